package report

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// ListDriveReceiptFolder lists the scanned PDF receipts of a Drive
// folder as a filename→webViewLink mapping for NewReceiptIndex.
func ListDriveReceiptFolder(ctx context.Context, folderID, serviceAccountPath string) (map[string]string, error) {
	service, err := createDriveService(ctx, serviceAccountPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	query := fmt.Sprintf("'%s' in parents and mimeType = 'application/pdf' and trashed = false", folderID)
	listing := map[string]string{}
	pageToken := ""

	for {
		call := service.Files.List().
			Q(query).
			Fields("nextPageToken, files(name, webViewLink)").
			PageSize(1000).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("unable to list folder %s: %w", folderID, err)
		}

		for _, f := range page.Files {
			listing[f.Name] = f.WebViewLink
		}

		if page.NextPageToken == "" {
			return listing, nil
		}
		pageToken = page.NextPageToken
	}
}

func createDriveService(ctx context.Context, serviceAccountPath string) (*drive.Service, error) {
	jsonKey, err := os.ReadFile(serviceAccountPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, drive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	return drive.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
}
