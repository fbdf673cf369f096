package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

func UploadToCloudinary(localPath string) (string, error) {
	godotenv.Load()

	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return "", fmt.Errorf("cloudinary environment variables not set")
		}

		cld, err := cloudinary.NewFromURL(cldURL)
		if err != nil {
			return "", fmt.Errorf("cloudinary init from URL fail: %v", err)
		}

		return uploadFile(cld, localPath)
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return "", fmt.Errorf("cloudinary init from params fail: %v", err)
	}

	return uploadFile(cld, localPath)
}

func uploadFile(cld *cloudinary.Cloudinary, localPath string) (string, error) {
	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("upload_%d", time.Now().UnixNano()),
		Folder:   "market",
	})

	os.Remove(localPath)

	if err != nil {
		return "", err
	}

	if resp == nil {
		return "", fmt.Errorf("cloudinary response is nil")
	}

	if resp.SecureURL == "" {
		if resp.URL != "" {
			return resp.URL, nil
		}
		return "", fmt.Errorf("both SecureURL and URL are empty")
	}

	return resp.SecureURL, nil
}

func DeleteFromCloudinary(publicID string) error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	var cld *cloudinary.Cloudinary
	var err error

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return fmt.Errorf("cloudinary environment variables not set")
		}
		cld, err = cloudinary.NewFromURL(cldURL)
	} else {
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}
	if err != nil {
		return fmt.Errorf("cloudinary init fail: %v", err)
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete from Cloudinary: %v", err)
	}

	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}

	return nil
}
