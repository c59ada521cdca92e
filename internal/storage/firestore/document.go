// Package firestore talks to the Firestore REST API, the remote document
// store holding courses, class instances and bookings. Documents use the
// API's typed-value envelope, which is not plain JSON: every field is a
// tagged union and integers travel as decimal strings.
package firestore

import "encoding/json"

// Collection names in the remote database.
const (
	CoursesCollection   = "courses"
	InstancesCollection = "instances"
	BookingsCollection  = "bookings"
)

// Field names shared with the admin tool that writes the documents.
const (
	FieldID          = "id"
	FieldCourseID    = "courseId"
	FieldDate        = "date"
	FieldTeacher     = "teacher"
	FieldComment     = "comment"
	FieldEmail       = "email"
	FieldInstanceIDs = "instanceIds"
	FieldTimestamp   = "timestamp"
)

// Value is one tagged typed value. Exactly one variant is set on the wire.
// DoubleValue is a json.Number so both the string-encoded and the plain
// number form the API has been observed to emit decode cleanly.
type Value struct {
	StringValue  string      `json:"stringValue,omitempty"`
	IntegerValue string      `json:"integerValue,omitempty"`
	DoubleValue  json.Number `json:"doubleValue,omitempty"`
	BooleanValue *bool       `json:"booleanValue,omitempty"`
	ArrayValue   *ArrayValue `json:"arrayValue,omitempty"`
	MapValue     *MapValue   `json:"mapValue,omitempty"`
}

type ArrayValue struct {
	Values []Value `json:"values,omitempty"`
}

type MapValue struct {
	Fields map[string]Value `json:"fields,omitempty"`
}

// Document is one remote record.
type Document struct {
	Name       string           `json:"name,omitempty"`
	Fields     map[string]Value `json:"fields"`
	CreateTime string           `json:"createTime,omitempty"`
	UpdateTime string           `json:"updateTime,omitempty"`
}

// ListResponse is the envelope of a collection list call. Only the first
// page is ever consumed; NextPageToken is decoded but not followed.
type ListResponse struct {
	Documents     []Document `json:"documents"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
	Error         *APIError  `json:"error,omitempty"`
}

// APIError is the top-level error body the API returns in place of results.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
