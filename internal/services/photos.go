package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/data/repos"
	"github.com/studyspot/dataport/internal/platform/envutil"
	"github.com/studyspot/dataport/internal/platform/gcp"
	"github.com/studyspot/dataport/internal/platform/logger"
	"github.com/studyspot/dataport/internal/types"
	"golang.org/x/image/draw"
	"gorm.io/gorm"
)

const (
	// photoScale is the linear downsize factor applied to both axes.
	photoScale = 0.30
	// webpQuality is the lossy encoder setting for transcoded photos.
	webpQuality = 80
)

type photoKind string

const (
	photoKindSpot photoKind = "spots"
	photoKindHall photoKind = "halls"
)

func (k photoKind) label() string {
	if k == photoKindHall {
		return "hall"
	}
	return "spot"
}

// PhotoService moves one entity's image list into object storage: download,
// downsize, re-encode as WebP, upload, record a Photo row. Images are
// processed independently in source order; a failed image is skipped (no
// retry) and noted on the report.
type PhotoService interface {
	MigrateSpotPhotos(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, spot *types.Spot, urls []string, report *RunReport)
	MigrateHallPhotos(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, hall *types.Hall, urls []string, report *RunReport)
}

type photoService struct {
	log        *logger.Logger
	httpClient *http.Client
	bucket     gcp.BucketService
	photoRepo  repos.PhotoRepo
}

func NewPhotoService(log *logger.Logger, bucket gcp.BucketService, photoRepo repos.PhotoRepo) PhotoService {
	timeout := time.Duration(envutil.Int("PHOTO_HTTP_TIMEOUT", 30)) * time.Second
	return &photoService{
		log:        log.With("service", "PhotoService"),
		httpClient: &http.Client{Timeout: timeout},
		bucket:     bucket,
		photoRepo:  photoRepo,
	}
}

func (ps *photoService) MigrateSpotPhotos(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, spot *types.Spot, urls []string, report *RunReport) {
	report.SpotPhotos += ps.migratePhotos(ctx, tx, orgID, photoKindSpot, spot.ID, spot.SourceID, urls, report)
}

func (ps *photoService) MigrateHallPhotos(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, hall *types.Hall, urls []string, report *RunReport) {
	report.HallPhotos += ps.migratePhotos(ctx, tx, orgID, photoKindHall, hall.ID, hall.SourceID, urls, report)
}

func (ps *photoService) migratePhotos(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, kind photoKind, entityID uuid.UUID, sourceID string, urls []string, report *RunReport) int {
	created := 0
	for i, rawURL := range urls {
		raw, err := ps.download(ctx, rawURL)
		if err != nil {
			ps.warn(report, kind, sourceID, i, "download %s: %v", rawURL, err)
			continue
		}
		encoded, err := transcodePhoto(raw)
		if err != nil {
			ps.warn(report, kind, sourceID, i, "transcode %s: %v", rawURL, err)
			continue
		}

		key := photoKey(orgID, kind, entityID, i)
		if err := ps.bucket.UploadFile(ctx, key, bytes.NewReader(encoded)); err != nil {
			ps.warn(report, kind, sourceID, i, "upload %s: %v", key, err)
			continue
		}

		photo := &types.Photo{
			ID:        uuid.New(),
			BucketKey: key,
			URL:       ps.bucket.PublicURL(key),
			Position:  i,
		}
		switch kind {
		case photoKindSpot:
			photo.SpotID = &entityID
		case photoKindHall:
			photo.HallID = &entityID
		}
		if err := attempt(tx, func() error {
			return ps.photoRepo.Create(ctx, tx, photo)
		}); err != nil {
			ps.warn(report, kind, sourceID, i, "record: %v", err)
			continue
		}

		ps.log.Debug("Photo migrated", "kind", string(kind), "source_id", sourceID, "key", key)
		created++
	}
	return created
}

func (ps *photoService) warn(report *RunReport, kind photoKind, sourceID string, index int, format string, args ...any) {
	msg := fmt.Sprintf("%s %s photo %d: %s", kind.label(), sourceID, index, fmt.Sprintf(format, args...))
	ps.log.Warn("Photo skipped", "detail", msg)
	report.AddError("%s", msg)
}

func (ps *photoService) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := ps.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// transcodePhoto decodes raw image bytes (jpeg/png/gif/webp), scales both
// axes down to 30% with Catmull-Rom resampling, and re-encodes as lossy WebP.
func transcodePhoto(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, scaledDimension(b.Dx()), scaledDimension(b.Dy())))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func scaledDimension(v int) int {
	scaled := int(math.Round(float64(v) * photoScale))
	if scaled < 1 {
		return 1
	}
	return scaled
}

func photoKey(orgID uuid.UUID, kind photoKind, entityID uuid.UUID, index int) string {
	return fmt.Sprintf("organizations/%s/photos/%s/%s/%d.webp", orgID, kind, entityID, index)
}
