package util

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// UploadJSONToGCS writes a JSON document to the given bucket/object and
// returns its gs:// URL plus the byte size written.
func UploadJSONToGCS(data []byte, bucketName, objectName string) (string, int64, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", 0, err
	}
	defer client.Close()

	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = "application/json"

	sizeBytes, err := w.Write(data)
	if err != nil {
		return "", 0, err
	}

	if err := w.Close(); err != nil {
		return "", 0, err
	}

	url := fmt.Sprintf("gs://%s/%s", bucketName, objectName)

	return url, int64(sizeBytes), nil
}

// ListArchivedObjects returns object paths under prefix/ in the bucket.
func ListArchivedObjects(bucketName, prefix string) ([]string, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	prefix = strings.TrimSuffix(prefix, "/")

	var paths []string
	it := client.Bucket(bucketName).Objects(ctx, &storage.Query{Prefix: prefix + "/"})
	for {
		obj, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		paths = append(paths, obj.Name)
	}

	return paths, nil
}

func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	re := regexp.MustCompile(`[^a-z0-9_\-]`)
	s = re.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

// ArchivePrefix builds the object prefix for one tenant's archived configs.
// Global templates land under "forms/global".
func ArchivePrefix(companyID string) string {
	if strings.TrimSpace(companyID) == "" {
		return "forms/global"
	}
	return fmt.Sprintf("forms/%s", SanitizePart(companyID))
}

func PublicGCSURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
