package item

import "github.com/osse101/ArkTools_Go/internal/domain"

// ToJSON renders it as a dense flat record. The blueprint is written without
// its class prefix, and only when set; uploadOffset only when non-zero.
func ToJSON(it *domain.Item) Record {
	r := Record{KeyClassName: it.ClassName}
	if it.HasBlueprint() {
		r[KeyBlueprintGeneratedClass] = it.BlueprintPath()
	}
	for _, f := range itemFields {
		f.encodeJSON(it, r)
	}
	if it.UploadOffset != 0 {
		r[KeyUploadOffset] = it.UploadOffset
	}
	return r
}
