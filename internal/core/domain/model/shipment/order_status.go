package shipment

// OrderStatusMap maps shipment statuses to the status labels understood by
// the external order service. Statuses absent from the map require no
// notification, so the workflow skips the gateway call entirely for them.
//
// The map is a configuration point injected at composition time: which
// transitions notify the order service can change without touching the
// transition rules themselves.
type OrderStatusMap map[Status]string

// DefaultOrderStatusMap returns the notification set used in production:
// the order service is told about InTransit, Completed and Cancelled
// shipments; Pending and Processing stay local.
func DefaultOrderStatusMap() OrderStatusMap {
	return OrderStatusMap{
		InTransit: "InTransit",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// OrderStatus returns the external order status label for the given
// shipment status, and whether a notification is required at all.
func (m OrderStatusMap) OrderStatus(status Status) (string, bool) {
	label, ok := m[status]
	return label, ok
}
