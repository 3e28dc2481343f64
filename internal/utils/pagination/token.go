package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/books_ledger/internal/apperrors"
)

const offsetTokenVersion = "o1"

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pagination token format (base64 decode): %v", apperrors.ErrValidation, err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EncodeOffsetToken creates an opaque token for the page starting at offset.
// The scope ties the token to the filter that produced it.
func EncodeOffsetToken(offset int, scope string) string {
	return EncodeMultiFieldToken(offsetTokenVersion, strconv.Itoa(offset), scope)
}

// DecodeOffsetToken returns the offset carried by token. A token minted for a
// different scope is rejected.
func DecodeOffsetToken(token, scope string) (int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 3 || parts[0] != offsetTokenVersion {
		return 0, fmt.Errorf("%w: invalid pagination token format (fields)", apperrors.ErrValidation)
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: invalid pagination token format (offset)", apperrors.ErrValidation)
	}
	if parts[2] != scope {
		return 0, fmt.Errorf("%w: pagination token does not match the current filter", apperrors.ErrValidation)
	}
	return offset, nil
}

// NextOffsetToken returns the token of the following page, or "" when the
// current page came back short.
func NextOffsetToken(offset, limit, returned int, scope string) string {
	if limit <= 0 || returned < limit {
		return ""
	}
	return EncodeOffsetToken(offset+returned, scope)
}
