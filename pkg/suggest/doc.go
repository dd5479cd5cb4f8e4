// Package suggest wraps the local Ollama text-generation service used to
// propose categories and tags for recipes.
//
// Two prompt shapes are supported: picking one category name from a
// controlled list (the model answers NONE when nothing fits), and a
// YES/NO check of whether a single tag describes a recipe. Calls are
// single request/response with no retries; the configured timeout is the
// only transport policy.
//
// The engine returns the model's free text untouched beyond trimming;
// resolving it against the server's actual label set is the matcher's job.
package suggest
