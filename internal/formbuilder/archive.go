package formbuilder

import (
	"encoding/json"
	"errors"
	"fmt"

	"safety-forms-api/internal/util"
)

var (
	uploadJSONToGCSHook     = util.UploadJSONToGCS
	listArchivedObjectsHook = util.ListArchivedObjects
)

// archiveConfig writes the imported document to the archive bucket so audits
// can compare the store against the source. Best effort: archive failures are
// logged, never surfaced to the importer's caller.
func (s *FormBuilderService) archiveConfig(cfg *FormConfig, scope TenantScope) {
	if s.ArchiveBucket == "" {
		return
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		s.logItem("warn", "archive", fmt.Sprintf("failed to encode %s for archive: %v", cfg.Code, err), cfg.Code, scope, "")
		return
	}

	companyID := ""
	if id := scope.CompanyID(); id != nil {
		companyID = *id
	}
	objectName := fmt.Sprintf("%s/%s.json", util.ArchivePrefix(companyID), util.SanitizePart(cfg.Code))

	if _, _, err := uploadJSONToGCSHook(data, s.ArchiveBucket, objectName); err != nil {
		s.logItem("warn", "archive", fmt.Sprintf("failed to archive %s: %v", cfg.Code, err), cfg.Code, scope, "")
	}
}

// ListArchivedConfigs returns the public URLs of the scope's archived config
// documents.
func (s *FormBuilderService) ListArchivedConfigs(scope TenantScope) ([]string, error) {
	if s.ArchiveBucket == "" {
		return nil, errArchiveDisabled
	}

	companyID := ""
	if id := scope.CompanyID(); id != nil {
		companyID = *id
	}

	paths, err := listArchivedObjectsHook(s.ArchiveBucket, util.ArchivePrefix(companyID))
	if err != nil {
		return nil, fmt.Errorf("failed to list archived configs: %w", err)
	}

	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		urls = append(urls, util.PublicGCSURL(s.ArchiveBucket, p))
	}
	return urls, nil
}

var errArchiveDisabled = errors.New("config archiving is not enabled")
