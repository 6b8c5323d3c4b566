package catalog

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// objectGetter is the subset of the S3 client used by the loader.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Loader implements Loader for catalogue files stored in AWS S3.
type s3Loader struct {
	client objectGetter
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalogue loader.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-catalog-loader").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 loader initialised")

	return newS3Loader(s3.NewFromConfig(cfg), bucket, logger), nil
}

func newS3Loader(client objectGetter, bucket string, logger zerolog.Logger) *s3Loader {
	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Load reads a catalogue object from S3. The key is used as-is; keys ending in
// .gz are gunzipped.
func (l *s3Loader) Load(ctx context.Context, key string) (*Source, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading catalogue from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	src, err := Decode(result.Body, isCompressed(key))
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to decode catalogue object")
		return nil, fmt.Errorf("failed to read catalogue object %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("products", len(src.PaymentLinks)).
		Msg("catalogue loaded successfully from S3")

	return src, nil
}

// fallbackLoader tries a primary loader first, then falls back to a secondary one.
type fallbackLoader struct {
	primary   Loader
	secondary Loader
	prefix    string
	enabled   bool
	logger    zerolog.Logger
}

// NewFallbackLoader creates a loader that tries primary with prefix+location,
// then secondary with location as-is. A nil or disabled primary is skipped.
func NewFallbackLoader(primary, secondary Loader, prefix string, enabled bool, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		primary:   primary,
		secondary: secondary,
		prefix:    prefix,
		enabled:   enabled,
		logger:    logger.With().Str("component", "fallback-loader").Logger(),
	}
}

// Load attempts the primary loader first, then falls back to the secondary.
func (l *fallbackLoader) Load(ctx context.Context, location string) (*Source, error) {
	if l.enabled && l.primary != nil {
		key := l.prefix + location

		src, err := l.primary.Load(ctx, key)
		if err == nil {
			return src, nil
		}

		l.logger.Warn().
			Err(err).
			Str("key", key).
			Msg("failed to load from primary source, falling back")
	} else {
		l.logger.Debug().
			Bool("enabled", l.enabled).
			Bool("has_primary", l.primary != nil).
			Msg("primary source disabled or not configured")
	}

	return l.secondary.Load(ctx, location)
}
