package usecase

import (
	"context"
	"errors"
	"testing"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"
	mock_interfaces "photo_studio/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testReturnURL = "https://studio.example.com/order/{orderId}"

func newTestPaymentIntentUseCase(ctrl *gomock.Controller) (*PaymentIntentUseCase, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockICatalogRepository) {
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	catalog := NewCatalogUseCase(repo, StudioSettings{PerUnitPriceInCents: 300})
	uc := NewPaymentIntentUseCase(gateway, catalog, testReturnURL)
	uc.newKey = func() string { return "idem-1" }
	return uc, gateway, repo
}

func TestPaymentIntentUseCase_LegacyContract(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTestPaymentIntentUseCase(ctrl)

		inputs := []CreatePaymentIntentInput{
			{Currency: "usd", PhotoUUID: "p-1"},
			{AmountInCent: 1000, PhotoUUID: "p-1"},
			{AmountInCent: 1000, Currency: "usd"},
			{AmountInCent: -5, Currency: "usd", PhotoUUID: "p-1"},
		}
		for _, in := range inputs {
			_, err := uc.CreatePaymentIntent(context.Background(), in)
			assert.True(t, errors.Is(err, ErrMissingIntentFields), "input %+v got %v", in, err)
		}
	})

	t.Run("invalid currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTestPaymentIntentUseCase(ctrl)

		_, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{AmountInCent: 1000, Currency: "dollars", PhotoUUID: "p-1"})
		assert.True(t, errors.Is(err, ErrInvalidIntentCurrency))
	})

	t.Run("currency is lower-cased and amount is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, _ := newTestPaymentIntentUseCase(ctrl)

		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
				assert.Equal(t, int64(1000), req.Amount)
				assert.Equal(t, "usd", req.Currency)
				assert.Equal(t, "p-1", req.PhotoUUID)
				assert.Equal(t, 2, req.PrintedPhotoNumber)
				assert.Equal(t, "idem-1", req.IdempotencyKey)
				assert.Equal(t, "https://studio.example.com/order/p-1", req.ReturnURL)
				return entities.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret_x", Amount: req.Amount, Currency: req.Currency}, nil
			})

		res, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{
			AmountInCent: 1000, Currency: "USD", PhotoUUID: "p-1", PrintedPhotoNumber: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, "pi_1_secret_x", res.Intent.ClientSecret)
		assert.Nil(t, res.Quote)
		assert.Equal(t, "https://studio.example.com/order/p-1", res.ReturnURL)
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, _ := newTestPaymentIntentUseCase(ctrl)

		gatewayErr := errors.New("stripe down")
		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, gatewayErr)

		_, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{AmountInCent: 1000, Currency: "usd", PhotoUUID: "p-1"})
		assert.True(t, errors.Is(err, gatewayErr))
	})
}

func TestPaymentIntentUseCase_CatalogPricing(t *testing.T) {
	t.Run("standard package with three extra prints", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, repo := newTestPaymentIntentUseCase(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(testCatalog(), nil)

		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
				md := req.Metadata()
				assert.Equal(t, int64(999+3*300), req.Amount)
				assert.Equal(t, "p-1", md[entities.MetadataPhotoUUID])
				assert.Equal(t, "5", md[entities.MetadataPrintedPhotoNumber])
				assert.Equal(t, "1899", md[entities.MetadataAmountInCents])
				assert.Equal(t, "1899", md[entities.MetadataProcessorAmount])
				assert.Equal(t, "standard", md[entities.MetadataPackageID])
				return entities.PaymentIntent{ID: "pi_2", ClientSecret: "pi_2_secret", Amount: req.Amount, Currency: req.Currency, Metadata: md}, nil
			})

		// Client-supplied amounts are ignored when a package is named.
		res, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{
			PhotoUUID: "p-1", PackageID: "standard", AdditionalPhotoNumber: 3, AmountInCent: 1, Currency: "eur",
		})
		require.NoError(t, err)
		require.NotNil(t, res.Quote)
		assert.Equal(t, 5, res.Quote.TotalUnitCount)
		assert.Equal(t, int64(1899), res.Intent.Amount)
	})

	t.Run("each call opens a new intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, repo := newTestPaymentIntentUseCase(ctrl)
		keys := []string{"k-1", "k-2"}
		uc.newKey = func() string {
			k := keys[0]
			keys = keys[1:]
			return k
		}
		repo.EXPECT().Load(gomock.Any()).Return(testCatalog(), nil).Times(2)

		var seen []string
		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
				seen = append(seen, req.IdempotencyKey)
				return entities.PaymentIntent{ID: "pi_" + req.IdempotencyKey, Amount: req.Amount}, nil
			}).Times(2)

		first, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{PhotoUUID: "p-1", PackageID: "standard", AdditionalPhotoNumber: 1})
		require.NoError(t, err)
		second, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{PhotoUUID: "p-1", PackageID: "standard", AdditionalPhotoNumber: 2})
		require.NoError(t, err)

		assert.Equal(t, []string{"k-1", "k-2"}, seen)
		assert.NotEqual(t, first.Intent.ID, second.Intent.ID)
		assert.Equal(t, int64(1299), first.Intent.Amount)
		assert.Equal(t, int64(1599), second.Intent.Amount)
	})

	t.Run("missing photo uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTestPaymentIntentUseCase(ctrl)

		_, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{PackageID: "standard"})
		assert.True(t, errors.Is(err, ErrMissingPhotoUUID))
	})

	t.Run("unknown package", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newTestPaymentIntentUseCase(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(testCatalog(), nil)

		_, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{PhotoUUID: "p-1", PackageID: "gold"})
		assert.True(t, errors.Is(err, ErrPackageNotFound))
	})

	t.Run("additional photo number that would wrap the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newTestPaymentIntentUseCase(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(testCatalog(), nil)

		_, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{
			PhotoUUID: "p-1", PackageID: "standard", AdditionalPhotoNumber: 1 << 62,
		})
		assert.True(t, errors.Is(err, pricing.ErrTooManyAdditionalUnits), "got %v", err)
	})

	t.Run("free package cannot be charged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newTestPaymentIntentUseCase(ctrl)
		c := testCatalog()
		c.ProductPackages = append(c.ProductPackages, entities.ProductPackage{ID: "free", Currency: "usd"})
		repo.EXPECT().Load(gomock.Any()).Return(c, nil)

		_, err := uc.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{PhotoUUID: "p-1", PackageID: "free"})
		assert.True(t, errors.Is(err, ErrNonPositiveAmount))
	})
}

func TestPaymentIntentUseCase_ReturnURL(t *testing.T) {
	uc := NewPaymentIntentUseCase(nil, nil, testReturnURL)
	assert.Equal(t, "https://studio.example.com/order/a%2Fb", uc.ReturnURL("a/b"))
	assert.Equal(t, "", uc.ReturnURL(""))
	assert.Equal(t, "", NewPaymentIntentUseCase(nil, nil, "").ReturnURL("p-1"))
}
