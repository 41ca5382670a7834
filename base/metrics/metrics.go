/*Package metrics wraps datadog-go to facilitate metric recording
Naming convention of metrics:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"time"
)

// Ender finishes a timer started by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		datadog: newDDMetrics(),
	}
}

// Metrics sends bumps to the datadog agent with a common prefix and base tags
type Metrics struct {
	pkgName string
	datadog *DDMetrics
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.datadog.BumpAvg(mt.pkgName+`.`+key, val, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.datadog.BumpSum(mt.pkgName+`.`+key, val, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.datadog.BumpHistogram(mt.pkgName+`.`+key, val, tags...)
}

// BumpTime starts a timer for the given key. A convenient way of recording
// the duration of a function is:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	start := time.Now()
	fullKey := mt.pkgName + `.` + key
	return endFunc(func() {
		mt.datadog.BumpHistogram(fullKey, float64(time.Since(start)/time.Millisecond), tags...)
	})
}

type endFunc func()

func (f endFunc) End() {
	f()
}
