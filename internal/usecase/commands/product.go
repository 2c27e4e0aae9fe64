package commands

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"veritag/internal/domain/product"
	"veritag/internal/infra"
	"veritag/internal/infra/db"
	"veritag/internal/pkg/clock"
	"veritag/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

var ErrImageUploadFailed = errs.New("image upload failed")

type ProductRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *product.Product) error
}

// MediaStore persists product images and resolves their public URLs.
type MediaStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	URL(key string) string
}

// ImageUpload carries the multipart image payload into the command.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type CreateProductInput struct {
	Name           string
	BatchSize      int
	UnitPriceCents int64
	Image          *ImageUpload
}

type ProductCommands interface {
	CreateProduct(ctx context.Context, input CreateProductInput, principal Principal) (*ProductSnapshot, error)
}

type productCommandsImpl struct {
	products ProductRepository
	media    MediaStore
	dbtx     db.DBTX
	clock    clock.Clock
}

func NewProductCommands(products ProductRepository, media MediaStore, dbtx db.DBTX, clk clock.Clock) ProductCommands {
	return &productCommandsImpl{
		products: products,
		media:    media,
		dbtx:     dbtx,
		clock:    clk,
	}
}

func (p *productCommandsImpl) CreateProduct(ctx context.Context, input CreateProductInput, principal Principal) (*ProductSnapshot, error) {
	if input.Image == nil || input.Image.Body == nil {
		return nil, errs.Mark(product.ErrMissingImage, ErrValidation)
	}

	imageKey := newImageKey(input.Image.Filename)

	entity, err := product.NewProduct(input.Name, input.BatchSize, input.UnitPriceCents, imageKey, principal.ID, p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	// Upload before insert so a catalog row never points at a missing image.
	// An orphaned object from a failed insert is harmless.
	if err := p.media.Put(ctx, imageKey, input.Image.ContentType, input.Image.Body, input.Image.Size); err != nil {
		return nil, errs.Mark(err, ErrImageUploadFailed)
	}

	if err := p.products.Create(ctx, p.dbtx, entity); err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &ProductSnapshot{
		ID:             entity.ID(),
		Name:           entity.Name(),
		BatchSize:      entity.BatchSize(),
		UnitPriceCents: entity.UnitPriceCents(),
		ImageKey:       entity.ImageKey(),
		OwnerID:        entity.OwnerID(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

// newImageKey builds a sortable, collision-free object key while keeping the
// original file extension for content-type sniffing on the CDN side.
func newImageKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return "products/" + strings.ToLower(ulid.Make().String()) + ext
}
