// Package models defines the core domain models for Kharcha.
//
// # Models
//
//   - Account: a user identified by email, verified via one-time passcodes
//   - GroceryList / GroceryItem: the per-account, per-date shopping ledger
//   - SplitRecord: a saved bill-split summary
//
// # Design Principles
//
// 1. **One list per (account, date)**: enforced by a unique index at the storage layer
// 2. **Items live inside their list**: no item identity outside its parent list
// 3. **Unix-second timestamps**: int64 everywhere, pointers for optional ones
// 4. **Closed sets as data**: units and categories are fixed slices that callers
// validate against, never branch on
package models
