package item

import (
	"fmt"
	"strings"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/property"
)

// FromGameObject decodes an item object of a live save. It never fails:
// every absent or mistyped property takes its default. The blueprint is
// left unset since live objects carry it only in their class.
func FromGameObject(obj *property.Object) *domain.Item {
	it := domain.NewItem()
	if obj != nil {
		it.ClassName = obj.ClassName.String()
	}
	for _, f := range itemFields {
		f.decode(obj, formatLive, it)
	}
	return it
}

// FromCluster decodes the tribute item block of a cluster entry.
// ItemArchetype is mandatory; it yields both the blueprint and the class name.
func FromCluster(c property.Container) (*domain.Item, error) {
	ref, ok := property.Reference(c, PropItemArchetype)
	if !ok || ref.Type != property.ReferenceByPath || ref.Path == "" {
		return nil, fmt.Errorf(ErrFmtMissingField, domain.ErrMissingMandatoryField, PropItemArchetype)
	}

	it := domain.NewItem()
	it.BlueprintGeneratedClass = withClassPrefix(ref.Path)
	it.ClassName = classFromPath(ref.Path)
	for _, f := range itemFields {
		f.decode(c, formatCluster, it)
	}
	return it, nil
}

// FromClusterEntry decodes an uploaded entry by unwrapping its ArkTributeItem struct
func FromClusterEntry(entry property.Container) (*domain.Item, error) {
	inner, ok := property.Struct(entry, PropArkTributeItem)
	if !ok {
		return nil, fmt.Errorf(ErrFmtMissingField, domain.ErrMissingMandatoryField, PropArkTributeItem)
	}
	return FromCluster(inner)
}

// FromJSON decodes a flat JSON record. className is mandatory and must be non-empty.
func FromJSON(r Record) (*domain.Item, error) {
	className, ok := r.StringValue(KeyClassName)
	if !ok || className == "" {
		return nil, fmt.Errorf(ErrFmtMissingField, domain.ErrMissingMandatoryField, KeyClassName)
	}

	it := domain.NewItem()
	it.ClassName = className
	if bp, ok := r.StringValue(KeyBlueprintGeneratedClass); ok && bp != "" {
		it.BlueprintGeneratedClass = withClassPrefix(bp)
	}
	for _, f := range itemFields {
		f.decodeJSON(r, it)
	}
	it.UploadOffset = int32(r.Int(KeyUploadOffset, 0))
	return it, nil
}

// withClassPrefix returns path with the blueprint class prefix, added only when absent
func withClassPrefix(path string) string {
	if strings.HasPrefix(path, domain.BlueprintClassPrefix) {
		return path
	}
	return domain.BlueprintClassPrefix + path
}

// classFromPath returns the text after the last '.' of an asset path,
// e.g. "/Game/.../PrimalItem_WeaponGun.PrimalItem_WeaponGun_C" gives "PrimalItem_WeaponGun_C"
func classFromPath(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
