package storage

import (
	"bytes"
	"context"
	"fmt"

	"DishCraft-Backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type awsS3 struct {
	client *s3.Client
	bucket string
	region string
}

func NewAwsS3() (ImageStore, error) {
	region := utils.GetConfig("AWS_S3_REGION")
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")
	bucket := utils.GetConfig("AWS_S3_BUCKET")

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (s *awsS3) SaveImage(ctx context.Context, recipeID string, data []byte) (string, error) {
	key := "images/" + recipeID + ".jpg"
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("uploading image to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
