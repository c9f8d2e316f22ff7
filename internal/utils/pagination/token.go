package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeOffset creates a page token pointing at a position inside a sorted result set of one table.
func EncodeOffset(table string, position int) string {
	return EncodeMultiFieldToken(table, strconv.Itoa(position))
}

// DecodeOffset reverses EncodeOffset. The token must have been issued for the same table.
func DecodeOffset(token, table string) (int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] != table {
		return 0, fmt.Errorf("pagination token was issued for table %q, not %q", parts[0], table)
	}
	position, err := strconv.Atoi(parts[1])
	if err != nil || position < 0 {
		return 0, fmt.Errorf("invalid pagination token format (position parse)")
	}
	return position, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
