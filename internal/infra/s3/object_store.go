package s3

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
)

const (
	portfolioPrefix = "portfolio/"
	siteImagePrefix = "site-images/"
	randomKeyBytes  = 6
)

// Upload stores an object and returns its durable public URL.
func (c *Client) Upload(src io.Reader, objectKey, contentType string) (string, error) {
	_, err := c.svc.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(objectKey),
		Body:        aws.ReadSeekCloser(src),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return c.ObjectURL(objectKey), nil
}

// DeleteObject removes an object. A missing object is treated as already
// deleted; cleanup deletes race with each other and must stay idempotent.
func (c *Client) DeleteObject(objectKey string) error {
	_, err := c.svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objectKey),
	})

	if err != nil {
		var awsErr awserr.Error
		if errors.As(err, &awsErr) && awsErr.Code() == s3.ErrCodeNoSuchKey {
			return nil
		}
		return err
	}

	return nil
}

// ObjectURL builds the durable public URL for a stored object.
func (c *Client) ObjectURL(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucketName, c.region, objectKey)
}

// BuildPortfolioKey produces portfolio/<timestamp>-<random>.<ext>.
func BuildPortfolioKey(ext string) string {
	return fmt.Sprintf("%s%d-%s%s", portfolioPrefix, time.Now().Unix(), randomSuffix(), normalizeExt(ext))
}

// BuildSiteImageKey produces site-images/<slot>-<timestamp>.<ext>.
func BuildSiteImageKey(slotName, ext string) string {
	return fmt.Sprintf("%s%s-%d%s", siteImagePrefix, slotName, time.Now().Unix(), normalizeExt(ext))
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(strings.ToLower(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func randomSuffix() string {
	buf := make([]byte, randomKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		// Falls back to a time-derived suffix; keys stay unique enough
		// because the timestamp component changes every second.
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
