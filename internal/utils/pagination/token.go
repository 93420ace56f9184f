package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeOffsetToken creates an opaque next-page token for an offset-paginated listing.
// The company ID is embedded so a token cannot be replayed against another company.
func EncodeOffsetToken(companyID string, offset int) string {
	tokenStr := fmt.Sprintf("%s|%d", companyID, offset)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeOffsetToken parses a token produced by EncodeOffsetToken for the given company.
func DecodeOffsetToken(token string, companyID string) (int, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] != companyID {
		return 0, fmt.Errorf("pagination token belongs to a different company")
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset)")
	}
	return offset, nil
}

// NextOffsetToken returns the token for the page after [offset, offset+limit), or "" when
// total shows there is nothing more.
func NextOffsetToken(companyID string, offset, limit, total int) string {
	next := offset + limit
	if limit <= 0 || next >= total {
		return ""
	}
	return EncodeOffsetToken(companyID, next)
}
