package model

// Hotel represents a property that can be searched and booked.
// A hotel aggregates one or more rooms; RoomsQuantity caches the
// total number of physical rooms across the property and is used
// by the availability search.  This struct corresponds to a row
// in the `hotels` table.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name of the hotel.
//  Location      – free-form location string matched by search.
//  Services      – list of amenities, stored as a JSON array.
//  RoomsQuantity – total number of rooms across the hotel.
//  ImageID       – identifier of the hotel's cover image.
type Hotel struct {
	ID            uint64   `json:"id"`             // hotels.id
	Name          string   `json:"name"`           // hotels.name
	Location      string   `json:"location"`       // hotels.location
	Services      []string `json:"services"`       // hotels.services (JSON column)
	RoomsQuantity uint32   `json:"rooms_quantity"` // hotels.rooms_quantity
	ImageID       uint32   `json:"image_id"`       // hotels.image_id
}

// Room represents a bookable room category within a hotel.  Quantity
// is the number of identical units of this category; a room category
// with quantity N admits at most N overlapping bookings.
//
// Fields:
//  ID          – primary key identifier.
//  HotelID     – hotel this room belongs to.
//  Name        – room category name.
//  Description – optional marketing description.
//  Price       – nightly price in minor currency units.
//  Services    – list of amenities, stored as a JSON array.
//  Quantity    – number of identical units of this category.
//  ImageID     – identifier of the room's image.
type Room struct {
	ID          uint64   `json:"id"`          // rooms.id
	HotelID     uint64   `json:"hotel_id"`    // rooms.hotel_id
	Name        string   `json:"name"`        // rooms.name
	Description *string  `json:"description"` // rooms.description (nullable)
	Price       uint64   `json:"price"`       // rooms.price
	Services    []string `json:"services"`    // rooms.services (JSON column)
	Quantity    uint32   `json:"quantity"`    // rooms.quantity
	ImageID     uint32   `json:"image_id"`    // rooms.image_id
}
