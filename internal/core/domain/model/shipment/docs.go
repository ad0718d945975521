// Package shipment contains the shipment aggregate and its supporting
// value objects.
//
// The package implements the core domain model of the logistics system:
//   - Shipment: the aggregate root tying a delivery to an order
//   - Status: the lifecycle state machine, driven by an explicit
//     adjacency table of named states
//   - Address: the validated destination address value object
//   - OrderStatusMap: the configurable mapping from shipment statuses to
//     the external order service's status labels
//
// All aggregates and value objects are created through validated
// constructors; zero values fail validation.
package shipment
