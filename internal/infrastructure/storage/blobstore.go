// Package storage abstracts the blob tree that holds tenant file uploads.
// Objects live under prefixes shaped like "companies/<id>/...", so one
// recursive walk from the company prefix reaches every tenant object.
package storage

import (
	"context"
	"fmt"
)

// BlobStore is the minimal surface the offboarding path needs: list one
// level of a prefix and delete a single object. Recursion over sub-prefixes
// is the caller's job, mirroring how bucket listing APIs behave.
type BlobStore interface {
	// List returns the object keys directly under prefix and the immediate
	// sub-prefixes beneath it.
	List(ctx context.Context, prefix string) (objects []string, prefixes []string, err error)
	// Delete removes a single object. Deleting a missing object is not an
	// error.
	Delete(ctx context.Context, object string) error
}

// CompanyPrefix returns the blob prefix that roots a tenant's file tree.
func CompanyPrefix(companyID uint) string {
	return joinPrefix("companies", companyID)
}

// DeleteTree recursively removes every object under prefix and returns how
// many objects were deleted. Every object delete and every sub-prefix is
// attempted independently: failures are collected and the walk keeps going,
// so one bad object cannot strand the rest of the tree.
func DeleteTree(ctx context.Context, store BlobStore, prefix string) (int64, []error) {
	objects, prefixes, err := store.List(ctx, prefix)
	if err != nil {
		return 0, []error{fmt.Errorf("failed to list %s: %w", prefix, err)}
	}

	var deleted int64
	var errs []error
	for _, object := range objects {
		if err := store.Delete(ctx, object); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", object, err))
			continue
		}
		deleted++
	}
	for _, sub := range prefixes {
		n, subErrs := DeleteTree(ctx, store, sub)
		deleted += n
		errs = append(errs, subErrs...)
	}
	return deleted, errs
}

// CountTree recursively counts the objects under prefix without touching
// them, for the read-only offboarding summary.
func CountTree(ctx context.Context, store BlobStore, prefix string) (int64, error) {
	objects, prefixes, err := store.List(ctx, prefix)
	if err != nil {
		return 0, err
	}

	total := int64(len(objects))
	for _, sub := range prefixes {
		n, err := CountTree(ctx, store, sub)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
