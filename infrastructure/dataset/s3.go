package dataset

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ObjectGetter é a parte do cliente S3 usada para baixar o dataset
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source lê o dataset de um objeto JSON no S3
type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

// NewS3Source usa a cadeia padrão de credenciais da AWS
func NewS3Source(ctx context.Context, cfg config.Dataset) (*S3Source, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, errors.Wrap(err, "dataset: load aws config")
	}

	return NewS3SourceWithClient(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Key), nil
}

func NewS3SourceWithClient(client ObjectGetter, bucket, key string) *S3Source {
	return &S3Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

func (s *S3Source) Name() string {
	return "s3://" + s.bucket + "/" + s.key
}

func (s *S3Source) Load(ctx context.Context) ([]domain.Sale, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: get object %s", s.Name())
	}
	defer out.Body.Close()

	return decodeSales(out.Body)
}
