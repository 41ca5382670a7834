package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/base/ptr"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/collection"
	mCollection "github.com/core-launch/goapi/domain/collection/mocks"
	"github.com/core-launch/goapi/domain/wallet"
	mWallet "github.com/core-launch/goapi/domain/wallet/mocks"
)

const testChainId = domain.ChainId(1114)

var (
	testCreator    = domain.Address("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	testCollection = domain.Address("0x5fbdb2315678afecb367f032d93f642f64180aa3")
	otherOwner     = domain.Address("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
)

func newUC(repo collection.Repo, tokenRepo collection.TokenRepo, signer wallet.Signer) collection.UseCase {
	return New(&CollectionUseCaseCfg{Repo: repo, TokenRepo: tokenRepo, Signer: signer, ChainId: testChainId})
}

func TestListSkipsUnresolvableEntries(t *testing.T) {
	c := bCtx.Background()
	broken := domain.Address("0x00000000000000000000000000000000000000ff")
	repo := &mCollection.Repo{}
	repo.On("List", mock.Anything, testChainId).Return([]domain.Address{testCollection, broken}, nil).Once()
	repo.On("FindOne", mock.Anything, testChainId, testCollection).
		Return(&collection.Info{Address: testCollection, Name: "Punks"}, nil).Once()
	repo.On("FindOne", mock.Anything, testChainId, broken).
		Return(nil, xerrors.New("execution reverted")).Once()

	uc := newUC(repo, &mCollection.TokenRepo{}, &mWallet.Signer{})
	infos, err := uc.List(c, testChainId, nil)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "Punks", infos[0].Name)
}

func TestListFiltersByCreator(t *testing.T) {
	c := bCtx.Background()
	other := domain.Address("0x00000000000000000000000000000000000000aa")
	repo := &mCollection.Repo{}
	repo.On("List", mock.Anything, testChainId).Return([]domain.Address{testCollection, other}, nil).Once()
	repo.On("FindOne", mock.Anything, testChainId, testCollection).
		Return(&collection.Info{Address: testCollection, Creator: testCreator, Name: "Punks"}, nil).Once()
	repo.On("FindOne", mock.Anything, testChainId, other).
		Return(&collection.Info{Address: other, Creator: otherOwner, Name: "Rocks"}, nil).Once()

	uc := newUC(repo, &mCollection.TokenRepo{}, &mWallet.Signer{})
	// creator addresses compare case-insensitively
	params := &collection.SearchParams{Creator: ptr.String("0xF39FD6E51AAD88F6F4CE6AB8827279CFFFB92266")}
	infos, err := uc.List(c, testChainId, params)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "Punks", infos[0].Name)
}

func TestBalanceReadsHoldings(t *testing.T) {
	c := bCtx.Background()
	tokenRepo := &mCollection.TokenRepo{}
	tokenRepo.On("BalanceOf", mock.Anything, testChainId, testCollection, testCreator).Return(3, nil).Once()

	uc := newUC(&mCollection.Repo{}, tokenRepo, &mWallet.Signer{})
	balance, err := uc.Balance(c, testChainId, testCollection, testCreator)
	require.NoError(t, err)
	require.Equal(t, 3, balance)
	tokenRepo.AssertExpectations(t)
}

func TestStatsCountsUniqueOwners(t *testing.T) {
	c := bCtx.Background()
	tokenRepo := &mCollection.TokenRepo{}
	tokenRepo.On("TotalSupply", mock.Anything, testChainId, testCollection).Return(3, nil).Once()
	tokenRepo.On("OwnerOf", mock.Anything, testChainId, testCollection, domain.TokenId("1")).Return(testCreator, nil).Once()
	tokenRepo.On("OwnerOf", mock.Anything, testChainId, testCollection, domain.TokenId("2")).Return(otherOwner, nil).Once()
	tokenRepo.On("OwnerOf", mock.Anything, testChainId, testCollection, domain.TokenId("3")).Return(testCreator, nil).Once()

	uc := newUC(&mCollection.Repo{}, tokenRepo, &mWallet.Signer{})
	stats, err := uc.Stats(c, testChainId, testCollection)
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalSupply)
	require.Equal(t, 2, stats.UniqueOwners)
}

func TestStatsStopsAtFirstMissingToken(t *testing.T) {
	c := bCtx.Background()
	tokenRepo := &mCollection.TokenRepo{}
	tokenRepo.On("TotalSupply", mock.Anything, testChainId, testCollection).Return(5, nil).Once()
	tokenRepo.On("OwnerOf", mock.Anything, testChainId, testCollection, domain.TokenId("1")).Return(testCreator, nil).Once()
	tokenRepo.On("OwnerOf", mock.Anything, testChainId, testCollection, domain.TokenId("2")).
		Return(domain.Address(""), xerrors.New("execution reverted: nonexistent token")).Once()

	uc := newUC(&mCollection.Repo{}, tokenRepo, &mWallet.Signer{})
	stats, err := uc.Stats(c, testChainId, testCollection)
	require.NoError(t, err)
	require.Equal(t, 1, stats.UniqueOwners)
	tokenRepo.AssertNotCalled(t, "OwnerOf", mock.Anything, testChainId, testCollection, domain.TokenId("3"))
}

func TestListNFTsRejectsNonErc721(t *testing.T) {
	c := bCtx.Background()
	tokenRepo := &mCollection.TokenRepo{}
	tokenRepo.On("Supports", mock.Anything, testChainId, testCollection).Return(false, nil).Once()

	uc := newUC(&mCollection.Repo{}, tokenRepo, &mWallet.Signer{})
	_, err := uc.ListNFTs(c, testChainId, testCollection)
	require.ErrorIs(t, err, domain.ErrBadParamInput)
	tokenRepo.AssertNotCalled(t, "TotalSupply", mock.Anything, mock.Anything, mock.Anything)
}

func TestListNFTsEnumeratesMintedTokens(t *testing.T) {
	c := bCtx.Background()
	tokenRepo := &mCollection.TokenRepo{}
	tokenRepo.On("Supports", mock.Anything, testChainId, testCollection).Return(true, nil).Once()
	tokenRepo.On("TotalSupply", mock.Anything, testChainId, testCollection).Return(2, nil).Once()
	tokenRepo.On("OwnerOf", mock.Anything, testChainId, testCollection, domain.TokenId("1")).Return(testCreator, nil).Once()
	tokenRepo.On("TokenURI", mock.Anything, testChainId, testCollection, domain.TokenId("1")).Return("ipfs://meta/1", nil).Once()
	tokenRepo.On("OwnerOf", mock.Anything, testChainId, testCollection, domain.TokenId("2")).Return(otherOwner, nil).Once()
	tokenRepo.On("TokenURI", mock.Anything, testChainId, testCollection, domain.TokenId("2")).Return("ipfs://meta/2", nil).Once()

	uc := newUC(&mCollection.Repo{}, tokenRepo, &mWallet.Signer{})
	nfts, err := uc.ListNFTs(c, testChainId, testCollection)
	require.NoError(t, err)
	require.Len(t, nfts, 2)
	require.Equal(t, "ipfs://meta/2", nfts[1].TokenURI)
	require.Equal(t, otherOwner, nfts[1].Owner)
}

func TestCreateRequiresConnectedWallet(t *testing.T) {
	c := bCtx.Background()
	signer := &mWallet.Signer{}
	signer.On("Session", mock.Anything).Return(nil, domain.ErrWalletNotConnected)
	repo := &mCollection.Repo{}

	uc := newUC(repo, &mCollection.TokenRepo{}, signer)
	_, err := uc.Create(c, testChainId, collection.CreatePayload{Name: "Punks", Symbol: "PNK"})
	require.ErrorIs(t, err, domain.ErrWalletNotConnected)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRequiresMatchingNetwork(t *testing.T) {
	c := bCtx.Background()
	signer := &mWallet.Signer{}
	signer.On("Session", mock.Anything).Return(&wallet.Session{Address: testCreator, ChainId: domain.ChainId(1)}, nil)
	repo := &mCollection.Repo{}

	uc := newUC(repo, &mCollection.TokenRepo{}, signer)
	_, err := uc.Create(c, testChainId, collection.CreatePayload{Name: "Punks", Symbol: "PNK"})
	require.ErrorIs(t, err, domain.ErrWrongNetwork)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReturnsDeployment(t *testing.T) {
	c := bCtx.Background()
	signer := &mWallet.Signer{}
	signer.On("Session", mock.Anything).Return(&wallet.Session{Address: testCreator, ChainId: testChainId}, nil)
	payload := collection.CreatePayload{Name: "Punks", Symbol: "PNK", BaseURI: "ipfs://meta/", MaxSupply: 100, Royalty: 5}
	repo := &mCollection.Repo{}
	repo.On("Create", mock.Anything, signer, testChainId, payload).Return(&collection.CreateResult{
		Collection: testCollection,
		Tx:         &domain.TxResult{TxHash: "0xabc", BlockNumber: 7},
	}, nil).Once()

	uc := newUC(repo, &mCollection.TokenRepo{}, signer)
	result, err := uc.Create(c, testChainId, payload)
	require.NoError(t, err)
	require.Equal(t, testCollection, result.Collection)
	repo.AssertExpectations(t)
}
