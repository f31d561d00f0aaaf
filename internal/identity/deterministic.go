// Package identity derives stable UUIDs for toolbar components and items so
// hosts can key UI state across editor instances.
package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const (
	componentPrefix = "go-richtext:toolbar_component:"
	itemPrefix      = "go-richtext:toolbar_item:"
)

// UUID derives a deterministic UUID from key using hashid normalization.
// Surrounding whitespace is ignored.
func UUID(key string) uuid.UUID {
	return derive(strings.TrimSpace(key), true)
}

// ToolbarComponentUUID identifies a toolbar component by the command it binds.
func ToolbarComponentUUID(command string) uuid.UUID {
	return UUID(componentPrefix + strings.TrimSpace(command))
}

// ToolbarItemUUID identifies one entry of a component. Tokens are case
// sensitive; "Date" and "date" are different placeholders.
func ToolbarItemUUID(componentID uuid.UUID, token string) uuid.UUID {
	if componentID == uuid.Nil || token == "" {
		return uuid.Nil
	}
	return derive(itemPrefix+componentID.String()+":"+token, false)
}

func derive(key string, normalize bool) uuid.UUID {
	if key == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(normalize))
	if err != nil || uid == uuid.Nil {
		if normalize {
			key = strings.ToLower(key)
		}
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	return uid
}
