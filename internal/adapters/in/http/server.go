package http

import (
	"context"
	"errors"
	"net/http"

	"logistics/internal/adapters/out/orderservice"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler   commands.CreateShipmentCommandHandler
	updateShipmentHandler   commands.UpdateShipmentCommandHandler
	transitionStatusHandler commands.TransitionShipmentStatusCommandHandler
	deleteShipmentHandler   commands.DeleteShipmentCommandHandler

	// Query handlers
	getAllShipmentsHandler   queries.GetAllShipmentsQueryHandler
	getShipmentByIDHandler   queries.GetShipmentByIDQueryHandler
	checkAvailabilityHandler queries.CheckShippingAvailabilityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	transitionStatusHandler commands.TransitionShipmentStatusCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	getAllShipmentsHandler queries.GetAllShipmentsQueryHandler,
	getShipmentByIDHandler queries.GetShipmentByIDQueryHandler,
	checkAvailabilityHandler queries.CheckShippingAvailabilityQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:    createShipmentHandler,
		updateShipmentHandler:    updateShipmentHandler,
		transitionStatusHandler:  transitionStatusHandler,
		deleteShipmentHandler:    deleteShipmentHandler,
		getAllShipmentsHandler:   getAllShipmentsHandler,
		getShipmentByIDHandler:   getShipmentByIDHandler,
		checkAvailabilityHandler: checkAvailabilityHandler,
	}
}

// ListShipments handles GET /api/v1/shipments - retrieves all shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	query := queries.NewGetAllShipmentsQuery()

	shipments, err := s.getAllShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve shipments")
	}

	response := make([]servers.Shipment, len(shipments))
	for i, item := range shipments {
		response[i] = toAPIShipment(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var newShipment servers.NewShipment
	if err := ctx.Bind(&newShipment); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(newShipment.OrderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	address, err := shipment.NewAddress(
		newShipment.Address.Street,
		newShipment.Address.City,
		newShipment.Address.State,
		newShipment.Address.PostalCode,
		newShipment.Address.Country,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid address: "+err.Error())
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		orderID,
		newShipment.Carrier,
		newShipment.ServiceLevel,
		address,
		newShipment.DispatchDate,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to create shipment")
	}

	created, err := s.fetchShipment(ctx.Request().Context(), shipmentID)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve created shipment")
	}

	return ctx.JSON(http.StatusCreated, created)
}

// GetShipmentById handles GET /api/v1/shipments/{shipmentId} - retrieves one shipment.
func (s *Server) GetShipmentById(ctx echo.Context, shipmentId openapi_types.UUID) error {
	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipment ID: "+err.Error())
	}

	found, err := s.fetchShipment(ctx.Request().Context(), shipmentID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Shipment not found")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve shipment")
	}

	return ctx.JSON(http.StatusOK, found)
}

// UpdateShipmentDetails handles PUT /api/v1/shipments/{shipmentId} - replaces
// a shipment's editable details.
func (s *Server) UpdateShipmentDetails(ctx echo.Context, shipmentId openapi_types.UUID) error {
	var update servers.UpdateShipment
	if err := ctx.Bind(&update); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipment ID: "+err.Error())
	}

	address, err := shipment.NewAddress(
		update.Address.Street,
		update.Address.City,
		update.Address.State,
		update.Address.PostalCode,
		update.Address.Country,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid address: "+err.Error())
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		shipmentID,
		update.Carrier,
		update.ServiceLevel,
		address,
		update.DispatchDate,
		update.ExpectedArrival,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to update shipment")
	}

	updated, err := s.fetchShipment(ctx.Request().Context(), shipmentID)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve updated shipment")
	}

	return ctx.JSON(http.StatusOK, updated)
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/{shipmentId}/status -
// transitions a shipment to a new lifecycle status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context, shipmentId openapi_types.UUID) error {
	var statusUpdate servers.StatusUpdate
	if err := ctx.Bind(&statusUpdate); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipment ID: "+err.Error())
	}

	cmd, err := commands.NewTransitionShipmentStatusCommand(shipmentID, statusUpdate.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	if handleErr := s.transitionStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to update shipment status")
	}

	updated, err := s.fetchShipment(ctx.Request().Context(), shipmentID)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve updated shipment")
	}

	return ctx.JSON(http.StatusOK, updated)
}

// DeleteShipment handles DELETE /api/v1/shipments/{shipmentId} - removes a shipment.
func (s *Server) DeleteShipment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipment ID: "+err.Error())
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipment ID: "+err.Error())
	}

	if handleErr := s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to delete shipment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckShippingAvailability handles POST /api/v1/shipping/availability -
// checks whether a destination is serviceable.
func (s *Server) CheckShippingAvailability(ctx echo.Context) error {
	var request servers.AvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	query, err := queries.NewCheckShippingAvailabilityQuery(
		request.PostalCode,
		request.City,
		request.State,
		request.Country,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid destination: "+err.Error())
	}

	result, err := s.checkAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to check availability")
	}

	response := servers.AvailabilityResponse{Available: result.Available}
	if result.Reason != "" {
		response.Reason = &result.Reason
	}
	if result.NormalizedAddress != nil {
		response.NormalizedAddress = &servers.Address{
			Street:     result.NormalizedAddress.Street,
			City:       result.NormalizedAddress.City,
			State:      result.NormalizedAddress.State,
			PostalCode: result.NormalizedAddress.PostalCode,
			Country:    result.NormalizedAddress.Country,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) fetchShipment(ctx context.Context, shipmentID kernel.UUID) (servers.Shipment, error) {
	query, err := queries.NewGetShipmentByIDQuery(shipmentID)
	if err != nil {
		return servers.Shipment{}, err
	}

	found, err := s.getShipmentByIDHandler.Handle(ctx, query)
	if err != nil {
		return servers.Shipment{}, err
	}

	return toAPIShipment(found), nil
}

// commandError maps a command handler failure to the HTTP status that
// matches its cause. Unrecognized errors fall through to 500 with the
// given generic message so internal details never reach the client.
func commandError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Shipment not found")
	case errors.Is(err, shipment.ErrInvalidStatusTransition),
		errors.Is(err, shipment.ErrShipmentIsNotEditable):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrOrderStatusUpdateFailed),
		errors.Is(err, orderservice.ErrOrderServiceUnavailable):
		return errorJSON(ctx, http.StatusBadGateway, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, fallback)
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func toAPIShipment(item queries.ShipmentResponse) servers.Shipment {
	return servers.Shipment{
		Id:           item.ID.Bytes(),
		OrderId:      item.OrderID.Bytes(),
		Status:       item.Status,
		Carrier:      item.Carrier,
		ServiceLevel: item.ServiceLevel,
		TrackingCode: item.TrackingCode,
		Address: servers.Address{
			Street:     item.Address.Street,
			City:       item.Address.City,
			State:      item.Address.State,
			PostalCode: item.Address.PostalCode,
			Country:    item.Address.Country,
		},
		DispatchDate:    item.DispatchDate,
		ExpectedArrival: item.ExpectedArrival,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
