package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"coshare/config"
	deliverycontext "coshare/internal/delivery/context"
	"coshare/internal/domain/entity"
	domainerrors "coshare/internal/domain/errors"
	"coshare/internal/domain/service"
	"coshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type syndicateService struct {
	mu         sync.RWMutex
	syndicates map[string]*entity.Syndicate

	catalog usecase.CatalogUsecase
	qrcode  service.QRCodeService
	baseURL string
	logger  *slog.Logger

	now   func() time.Time
	newID func() string
}

// SyndicateServiceParams holds dependencies for SyndicateService, injected by Fx.
type SyndicateServiceParams struct {
	fx.In

	Catalog usecase.CatalogUsecase
	QRCode  service.QRCodeService
	Config  *config.Config
	Logger  *slog.Logger
}

// NewSyndicateService creates the syndicate service with an empty registry
func NewSyndicateService(params SyndicateServiceParams) usecase.SyndicateUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.Syndicate != nil {
		baseURL = params.Config.Syndicate.BaseURL
	}

	return &syndicateService{
		syndicates: make(map[string]*entity.Syndicate),
		catalog:    params.Catalog,
		qrcode:     params.QRCode,
		baseURL:    baseURL,
		logger:     params.Logger,
		now:        time.Now,
		newID:      entity.NewSyndicateID,
	}
}

func (s *syndicateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Create opens a syndicate on a public asset. The initiator takes the first share.
func (s *syndicateService) Create(ctx context.Context, assetID, initiatorID string) (*entity.Syndicate, error) {
	asset, err := s.catalog.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if !asset.IsPublic() {
		return nil, domainerrors.ErrAssetNotPublic.WithDetails(assetID)
	}

	s.mu.Lock()
	id := s.newID()
	for s.exists(id) {
		id = s.newID()
	}

	syndicate := &entity.Syndicate{
		ID:           id,
		AssetID:      asset.ID,
		AssetName:    asset.Name,
		InitiatorID:  initiatorID,
		Link:         entity.SyndicateLink(s.baseURL, id),
		TargetShares: entity.SyndicateTargetShares,
		FilledShares: 1,
		FeeReduction: entity.SyndicateFeeReduction,
		CreatedAt:    s.now().UTC(),
	}
	s.syndicates[id] = syndicate
	s.mu.Unlock()

	s.log(ctx).Info("Syndicate created",
		slog.String("syndicate_id", id),
		slog.String("asset_id", asset.ID),
		slog.String("initiator_id", initiatorID),
	)

	copied := *syndicate

	return &copied, nil
}

// exists reports whether id is registered. Callers hold the lock.
func (s *syndicateService) exists(id string) bool {
	_, ok := s.syndicates[id]

	return ok
}

// Get returns a syndicate created by this process
func (s *syndicateService) Get(ctx context.Context, id string) (*entity.Syndicate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	syndicate, ok := s.syndicates[id]
	if !ok {
		return nil, domainerrors.ErrSyndicateNotFound.WithDetails(id)
	}

	copied := *syndicate

	return &copied, nil
}

// InviteQR renders the invite link of a syndicate as a PNG QR code
func (s *syndicateService) InviteQR(ctx context.Context, id string) ([]byte, error) {
	syndicate, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateInviteQR(syndicate.Link)
	if err != nil {
		s.log(ctx).Error("Failed to render invite QR", slog.String("syndicate_id", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrQRCodeFailed, err.Error())
	}

	return png, nil
}
