package explorer

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"

	"github.com/ledgerscope/explorer/internal/core"
)

const defaultGateway = "https://ipfs.io"

// MetadataLocation returns the location stored in token metadata,
// which the mirror node serves base64 encoded.
func MetadataLocation(metadata string) string {
	if b, err := base64.StdEncoding.DecodeString(metadata); err == nil && strings.Contains(string(b), "://") {
		return string(b)
	}
	return metadata
}

// MetadataURL maps a metadata location to a fetchable url.
// ipfs:// locations are resolved through gateway.
func MetadataURL(gateway, location string) (string, error) {
	switch {
	case strings.HasPrefix(location, "ipfs://"):
		if gateway == "" {
			gateway = defaultGateway
		}
		return strings.TrimSuffix(gateway, "/") + "/ipfs/" + strings.TrimPrefix(location, "ipfs://"), nil
	case strings.HasPrefix(location, "https://"), strings.HasPrefix(location, "http://"):
		return location, nil
	default:
		return "", errors.Wrapf(core.ErrInvalidArg, "unsupported metadata location '%s'", location)
	}
}

func (s *Service) loadMetadata(ctx context.Context, location string) (*core.TokenMetadata, error) {
	u, err := MetadataURL(s.cfg.MetadataGateway, location)
	if err != nil {
		return nil, err
	}

	var ret core.TokenMetadata
	if err := s.cfg.Mirror.FetchURL(ctx, u, &ret); err != nil {
		return nil, errors.Wrapf(err, "fetch metadata %s", location)
	}
	return &ret, nil
}
