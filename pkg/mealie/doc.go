// Package mealie implements the client for a Mealie-compatible recipe
// server API.
//
// The client covers the subset of the API savor needs: listing recipes,
// categories, and tags (with page/pageSize pagination), creating
// categories, and patching a recipe's category or tag assignments.
// Responses that arrive as a plain JSON list instead of the usual
// {"items": [...], "total": N} envelope are accepted as a single page.
//
// HTTP failures are surfaced as structured errors: 401/403 map to
// UNAUTHORIZED, 404 to NOT_FOUND, everything else to REMOTE_ERROR. The
// client performs no retries; callers skip the failed item and continue.
package mealie
