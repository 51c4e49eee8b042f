// Package dineboard is the bookkeeping engine of a restaurant: ingredient
// stock, recipe costing, daily order processing and the ledger of processed
// orders.
//
// The core functionalities include:
//   - Quantities: text amounts like "20 kg" are parsed into a decimal value
//     and a unit label. Units are never converted, "kg" and "g" are
//     incompatible.
//   - Inventory: ingredients with their stock and what it cost, from which a
//     price per unit is derived. Depletion floors the stock at zero and
//     reports overdrafts instead of failing.
//   - Menu and costing: dishes are recipes of per serving quantities, a
//     serving is priced from the ingredients' unit prices.
//   - Order processing: a batch of orders is applied to a stock snapshot,
//     yielding the new stock and low stock warnings.
//   - Ledger: processed days are appended to a CSV file kept sorted by date,
//     and the rows of a day are found back with a binary search.
//
// This package serves as the foundational logic for the `dine` command-line
// tool.
package dineboard
