package controllers

import (
	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) RoomController {
	return RoomController{Rooms: rooms}
}

// GetRooms godoc
// @Summary List rooms
// @Tags rooms
// @Param status query string false "Available, Occupied or Reserved"
// @Param room_type query string false "room type"
// @Success 200 {object} response.Response
// @Router /rooms [get]
func (rc RoomController) GetRooms(c *gin.Context) {
	var filter dto.RoomFilter
	if !bindQuery(c, &filter) {
		return
	}
	rooms, err := rc.Rooms.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rooms)
}

// GetAvailableRooms godoc
// @Summary Rooms that can take a new booking
// @Tags rooms
// @Success 200 {object} response.Response
// @Router /rooms/available [get]
func (rc RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.Rooms.ListAvailable(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rooms)
}

func (rc RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, room)
}

// CreateRoom godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Param room body dto.CreateRoomRequest true "room"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /rooms [post]
func (rc RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := rc.Rooms.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, room)
}

func (rc RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := rc.Rooms.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, room)
}

// DeleteRoom godoc
// @Summary Delete a room without active bookings
// @Tags rooms
// @Param id path int true "room id"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /rooms/{id} [delete]
func (rc RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}
