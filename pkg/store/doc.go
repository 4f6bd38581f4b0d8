// Package store persists block instances in Redis and broadcasts changes to
// them over Pub/Sub.
//
// # Overview
//
// A saved block becomes a Record: a UUID, the block's namespaced id and a
// snapshot of its state. Records are plain data; turning one back into a Block
// needs the block's Traits, looked up from any TraitsSource such as a catalog
// registry.
//
// # Multi-World Support
//
// All Redis keys and Pub/Sub channels are namespaced by world name, so several
// worlds can share one Redis server without seeing each other's blocks.
//
// # Redis Schema
//
// Records: mcobj:{world}:block:{record_id} (hash with id, block_id, state,
// created_at_ms; state is JSON)
//
// Record index: mcobj:{world}:blocks (ZSET of record ids scored by
// created_at_ms)
//
// Events: mcobj:{world}:block_events (JSON Event per save or delete)
//
// # Usage Example
//
//	client, err := store.NewClient(&redis.Options{Addr: "localhost:6379"}, "overworld")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	rec, err := client.SaveBlock(ctx, lever)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	restored, err := client.LoadBlock(ctx, rec.ID, factory.Blocks)
package store
