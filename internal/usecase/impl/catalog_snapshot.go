package impl

import (
	"bytes"
	"encoding/json"

	"coshare/internal/domain/entity"

	"github.com/pkg/errors"
)

// catalogSnapshotVersion is written into every snapshot envelope.
const catalogSnapshotVersion = 1

var (
	errEmptySnapshot       = errors.New("snapshot is empty")
	errSnapshotVersion     = errors.New("unsupported snapshot version")
	errDuplicateAssetID    = errors.New("duplicate asset id")
	errMissingAssetsRecord = errors.New("snapshot contains a null asset")
)

// catalogSnapshot is the persisted form of the whole collection.
type catalogSnapshot struct {
	Version int             `json:"version"`
	Assets  []*entity.Asset `json:"assets"`
}

func encodeCatalog(assets []*entity.Asset) ([]byte, error) {
	data, err := json.Marshal(catalogSnapshot{
		Version: catalogSnapshotVersion,
		Assets:  assets,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode catalog snapshot")
	}

	return data, nil
}

// decodeCatalog accepts the versioned envelope or a bare array written by older builds,
// and rejects the snapshot when any record breaks an asset invariant.
func decodeCatalog(data []byte) ([]*entity.Asset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errEmptySnapshot
	}

	var assets []*entity.Asset
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &assets); err != nil {
			return nil, errors.Wrap(err, "decode legacy catalog")
		}
	} else {
		var snapshot catalogSnapshot
		if err := json.Unmarshal(trimmed, &snapshot); err != nil {
			return nil, errors.Wrap(err, "decode catalog snapshot")
		}
		if snapshot.Version != catalogSnapshotVersion {
			return nil, errors.Wrapf(errSnapshotVersion, "version %d", snapshot.Version)
		}
		assets = snapshot.Assets
	}

	if err := validateCatalog(assets); err != nil {
		return nil, err
	}

	for _, asset := range assets {
		if asset.Specs == nil {
			asset.Specs = []entity.Spec{}
		}
	}

	return assets, nil
}

func validateCatalog(assets []*entity.Asset) error {
	seen := make(map[string]struct{}, len(assets))
	for idx, asset := range assets {
		if asset == nil {
			return errors.Wrapf(errMissingAssetsRecord, "index %d", idx)
		}
		if err := asset.Validate(); err != nil {
			return err
		}
		if _, dup := seen[asset.ID]; dup {
			return errors.Wrap(errDuplicateAssetID, asset.ID)
		}
		seen[asset.ID] = struct{}{}
	}

	return nil
}
