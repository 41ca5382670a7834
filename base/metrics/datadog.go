package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/core-launch/goapi/base/env"
	"github.com/core-launch/goapi/base/log"
)

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
	// ddPort is the statsd port of the datadog agent
	ddPort = 8125
)

var (
	initOnce = sync.Once{}
	ddClient statsCli
	ddTags   []string
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
}

// noopCli is used when no datadog agent is configured
type noopCli struct{}

func (noopCli) Gauge(string, float64, []string, float64) error     { return nil }
func (noopCli) Count(string, int64, []string, float64) error       { return nil }
func (noopCli) Histogram(string, float64, []string, float64) error { return nil }

func initDDClient() {
	ddTags = []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"pod:" + env.PodName(),
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}

	ddHost := viper.GetString("datadog_host")
	if ddHost == "" {
		ddClient = noopCli{}
		return
	}

	addr := fmt.Sprintf("%s:%d", ddHost, ddPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	client, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
	ddClient = client
}

// DDMetrics wraps datadog statsd
type DDMetrics struct{}

func newDDMetrics() *DDMetrics {
	initOnce.Do(initDDClient)
	return &DDMetrics{}
}

// BumpAvg bumps the average for the given key.
func (dm *DDMetrics) BumpAvg(key string, val float64, tags ...string) {
	if err := ddClient.Gauge(key, val, dm.mergeTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("gauge failed")
	}
}

// BumpSum bumps the sum for the given key.
func (dm *DDMetrics) BumpSum(key string, val float64, tags ...string) {
	if err := ddClient.Count(key, int64(val), dm.mergeTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("count failed")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (dm *DDMetrics) BumpHistogram(key string, val float64, tags ...string) {
	if err := ddClient.Histogram(key, val, dm.mergeTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("histogram failed")
	}
}

// mergeTags converts key/value pairs into datadog "k:v" tags and appends the
// base tags
func (dm *DDMetrics) mergeTags(kvs []string) []string {
	tags := make([]string, 0, len(kvs)/2+len(ddTags))
	for i := 0; i+1 < len(kvs); i += 2 {
		tags = append(tags, kvs[i]+":"+kvs[i+1])
	}
	return append(tags, ddTags...)
}
