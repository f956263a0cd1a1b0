package transfer

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/item"
	"github.com/osse101/ArkTools_Go/internal/logger"
	"github.com/osse101/ArkTools_Go/internal/metrics"
	"github.com/osse101/ArkTools_Go/internal/property"
)

// Encoder projects items into the two save formats
type Encoder interface {
	ToCluster(it *domain.Item) (*property.List, error)
	ToGameObject(it *domain.Item, pool *item.Pool, ownerInventory int32) (*property.Object, error)
}

// Service runs item conversions over whole batches. Per-item failures are
// collected and the batch continues; exhausted id or name space aborts it.
type Service interface {
	UploadToCluster(ctx context.Context, records []item.Record) (*ClusterResult, error)
	AddToInventories(ctx context.Context, archive *property.Archive, inventories map[int32][]item.Record) (*InventoryResult, error)
	ImportCluster(ctx context.Context, entries []*property.List) ([]item.Record, []ItemFailure)
	ExportInventory(ctx context.Context, archive *property.Archive, inventoryID int32) ([]item.Record, error)
	// Release drops the cached id sets of an archive the caller is done with
	Release(archive *property.Archive)
}

// ClusterResult holds the entries of a cluster upload, in input order
type ClusterResult struct {
	Entries  []*property.List
	Failures []ItemFailure
}

// InventoryResult holds the objects appended to the archive, in append order
type InventoryResult struct {
	Added    []*property.Object
	Failures []ItemFailure
}

type service struct {
	encoder Encoder
	idSets  *idSetCache
}

// NewService creates a batch conversion service
func NewService(encoder Encoder, cache CacheConfig) Service {
	return &service{
		encoder: encoder,
		idSets:  newIDSetCache(cache),
	}
}

// UploadToCluster decodes each JSON record and encodes it as a cluster entry
func (s *service) UploadToCluster(ctx context.Context, records []item.Record) (*ClusterResult, error) {
	log := logger.FromContext(ctx)
	result := &ClusterResult{}

	for pos, r := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		entry, className, err := s.uploadOne(r)
		metrics.RecordItem(ctx, metrics.DirectionJSONToCluster, err)
		if err != nil {
			log.Warn(LogMsgItemRejected, "position", pos, "class", className, "error", err)
			if domain.IsBatchFatal(err) {
				log.Error(LogMsgBatchAborted, "error", err)
				return result, fmt.Errorf(ErrFmtClusterAborted, pos, err)
			}
			result.Failures = append(result.Failures, ItemFailure{Position: pos, ClassName: className, Err: err})
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	log.Info(LogMsgClusterUploaded, "entries", len(result.Entries), "failed", len(result.Failures))
	return result, nil
}

func (s *service) uploadOne(r item.Record) (*property.List, string, error) {
	className := r.String(item.KeyClassName, "")
	it, err := item.FromJSON(r)
	if err != nil {
		return nil, className, err
	}
	entry, err := s.encoder.ToCluster(it)
	return entry, className, err
}

// AddToInventories appends a new item object per record to its target
// inventory. Names are unique across the save and ids within each
// inventory, including among the objects added by this call.
func (s *service) AddToInventories(ctx context.Context, archive *property.Archive, inventories map[int32][]item.Record) (*InventoryResult, error) {
	log := logger.FromContext(ctx)
	result := &InventoryResult{}
	names := item.CollectNames(archive.Objects)

	for _, inv := range sortedInventoryIDs(inventories) {
		records := inventories[inv]
		if owner, ok := archive.Get(inv); !ok || owner.IsItem {
			err := fmt.Errorf(ErrFmtInventoryID, domain.ErrInventoryNotFound, inv)
			metrics.RecordItem(ctx, metrics.DirectionJSONToLive, err)
			log.Warn(LogMsgInventoryMissing, "inventory", inv, "items", len(records))
			result.Failures = append(result.Failures, ItemFailure{Inventory: inv, Position: NoPosition, Err: err})
			continue
		}

		pool := &item.Pool{IDs: s.idSets.Get(archive, inv), Names: names}
		for pos, r := range records {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			obj, className, err := s.addOne(r, pool, inv)
			metrics.RecordItem(ctx, metrics.DirectionJSONToLive, err)
			if err != nil {
				log.Warn(LogMsgItemRejected, "inventory", inv, "position", pos, "class", className, "error", err)
				if domain.IsBatchFatal(err) {
					log.Error(LogMsgBatchAborted, "error", err)
					return result, fmt.Errorf(ErrFmtBatchAborted, inv, pos, err)
				}
				result.Failures = append(result.Failures, ItemFailure{Inventory: inv, Position: pos, ClassName: className, Err: err})
				continue
			}

			archive.Append(obj)
			pool.Reserve(obj)
			result.Added = append(result.Added, obj)
		}
	}

	log.Info(LogMsgInventoriesAdded, "added", len(result.Added), "failed", len(result.Failures))
	return result, nil
}

func (s *service) addOne(r item.Record, pool *item.Pool, inv int32) (*property.Object, string, error) {
	className := r.String(item.KeyClassName, "")
	it, err := item.FromJSON(r)
	if err != nil {
		return nil, className, err
	}
	obj, err := s.encoder.ToGameObject(it, pool, inv)
	return obj, className, err
}

// ImportCluster converts uploaded cluster entries back to JSON records
func (s *service) ImportCluster(ctx context.Context, entries []*property.List) ([]item.Record, []ItemFailure) {
	log := logger.FromContext(ctx)
	records := make([]item.Record, 0, len(entries))
	var failures []ItemFailure

	for pos, entry := range entries {
		it, err := item.FromClusterEntry(entry)
		metrics.RecordItem(ctx, metrics.DirectionClusterToJSON, err)
		if err != nil {
			log.Warn(LogMsgItemRejected, "position", pos, "error", err)
			failures = append(failures, ItemFailure{Position: pos, Err: err})
			continue
		}
		records = append(records, item.ToJSON(it))
	}

	log.Info(LogMsgClusterImported, "records", len(records), "failed", len(failures))
	return records, failures
}

// ExportInventory converts the items held by one inventory to JSON records
func (s *service) ExportInventory(ctx context.Context, archive *property.Archive, inventoryID int32) ([]item.Record, error) {
	if owner, ok := archive.Get(inventoryID); !ok || owner.IsItem {
		return nil, fmt.Errorf(ErrFmtInventoryID, domain.ErrInventoryNotFound, inventoryID)
	}

	objects := archive.InventoryItems(inventoryID)
	records := make([]item.Record, 0, len(objects))
	for _, o := range objects {
		records = append(records, item.ToJSON(item.FromGameObject(o)))
		metrics.RecordItem(ctx, metrics.DirectionLiveToJSON, nil)
	}

	logger.FromContext(ctx).Info(LogMsgInventoryExported, "inventory", inventoryID, "records", len(records))
	return records, nil
}

func (s *service) Release(archive *property.Archive) {
	s.idSets.Invalidate(archive)
}

func sortedInventoryIDs(inventories map[int32][]item.Record) []int32 {
	ids := make([]int32, 0, len(inventories))
	for id := range inventories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
