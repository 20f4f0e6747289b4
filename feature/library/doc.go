// Package library implements the workout and recipe catalog feature.
//
// Catalogs are JSON documents stored in object storage; each catalog item
// references a media asset (exercise video, recipe photo) under the bucket's
// media/ prefix. Favorites are stored in the database.
//
// # Catalog Cache
//
// Parsed catalogs and media listings are cached with a TTL and singleflight
// protection so concurrent page loads don't stampede storage. The cache is
// owned by the Service; there is no package-level cache state.
//
// # Integrity Check
//
// The check endpoint reconciles three sources per kind: catalog entries,
// media objects and favorite rows. It reports the union of keys with
// per-source presence flags, surfacing orphaned media, dangling favorites
// and catalog items whose asset is missing.
//
// # List Pages
//
// List endpoints return rendered markup produced through the keyed list
// renderer: items keep their fragment identity across repaints and filter
// changes, so an unchanged list costs no render work.
//
// # HTTP Endpoints
//
//   - GET    /library/workouts           : workout list (JSON + markup)
//   - GET    /library/recipes            : recipe list (JSON + markup)
//   - GET    /library/check              : catalog/media/favorites integrity
//   - PUT    /library/favorites/:kind/:id : mark an item as favorite
//   - DELETE /library/favorites/:kind/:id : unmark a favorite
package library
