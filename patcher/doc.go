// Package patcher rewrites repository lookups that are followed by an update
// or delete of the loaded entity so they use the change-tracking variant.
//
// In C# sources, a statement such as
//
//	var plant = await _plantRepository.GetAsync(p => p.Id == request.Id);
//
// loads an untracked entity. When the same variable is passed to .Update(...)
// or .Delete(...) shortly afterwards, the lookup must use GetTrackedAsync for
// the change to be persisted. The patcher finds these statements and rewrites
// ".GetAsync(" to ".GetTrackedAsync(" in place.
//
// # Quick Start
//
//	result, err := patcher.PatchWithOptions(
//		patcher.WithRoots("Business/Handlers", "Business/Services"),
//		patcher.WithDryRun(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range result.Files {
//		for _, fix := range f.Fixes {
//			fmt.Printf("Fixed in %s: %s\n", f.Path, fix.Variable)
//		}
//	}
//
// Files are processed concurrently. A file that cannot be read or written is
// recorded in PatchResult.Errors and does not stop the run.
package patcher
