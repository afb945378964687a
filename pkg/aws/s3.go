package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/costctl/costctl/internal/models"
	"github.com/costctl/costctl/pkg/utils"
)

// S3Client struct for S3 client
type S3Client struct {
	client *s3.Client
	region string
}

// NewS3Client creates a new S3Client
func NewS3Client(region string) (*S3Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &S3Client{
		client: s3.NewFromConfig(cfg),
		region: region,
	}, nil
}

// GetEmptyBucketCandidates lists account buckets homed in this region and
// samples the first list page to find buckets holding nothing
func (c *S3Client) GetEmptyBucketCandidates() ([]models.BucketInfo, error) {
	result, err := c.client.ListBuckets(context.TODO(), &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("error listing S3 buckets: %w", err)
	}

	buckets := []models.BucketInfo{}

	for _, bucket := range result.Buckets {
		bucketName := utils.SafeDeref(bucket.Name)

		location, err := c.client.GetBucketLocation(context.TODO(), &s3.GetBucketLocationInput{
			Bucket: aws.String(bucketName),
		})
		if err != nil {
			continue
		}

		bucketRegion := string(location.LocationConstraint)
		if bucketRegion == "" {
			// Legacy API quirk: us-east-1 comes back empty
			bucketRegion = "us-east-1"
		}
		if bucketRegion != c.region {
			continue
		}

		info := models.BucketInfo{
			BucketName: bucketName,
			Region:     bucketRegion,
		}
		if bucket.CreationDate != nil {
			info.CreationDate = *bucket.CreationDate
		}

		objects, err := c.client.ListObjectsV2(context.TODO(), &s3.ListObjectsV2Input{
			Bucket: aws.String(bucketName),
		})
		if err != nil {
			continue
		}

		for _, object := range objects.Contents {
			info.ObjectCount++
			if object.Size != nil {
				info.TotalSize += *object.Size
			}
		}
		info.Empty = info.ObjectCount == 0 && !utils.SafeBool(objects.IsTruncated)

		if info.Empty {
			buckets = append(buckets, info)
		}
	}

	return buckets, nil
}
