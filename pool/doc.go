// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
//
// Package pool recycles released native blocks so hot allocation paths can
// reuse mappings instead of going back to the OS. Blocks are cached in
// exact-size classes; reuse hands back zeroed memory.
package pool
