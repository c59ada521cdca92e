package firestore

import (
	"strconv"

	"yogabooker/internal/models"
)

// scalarString extracts the named field as a string, trying the typed-value
// variants in priority order: string, integer, double, boolean. Absent
// fields and fields with no recognized variant come back as "". The empty
// default deliberately conflates "absent" with "present but empty"; the
// admin tool never writes empty mandatory fields, so the ambiguity is
// harmless here.
func scalarString(fields map[string]Value, name string) string {
	v, ok := fields[name]
	if !ok {
		return ""
	}

	if v.StringValue != "" {
		return v.StringValue
	}
	if v.IntegerValue != "" {
		return v.IntegerValue
	}
	if v.DoubleValue != "" {
		return v.DoubleValue.String()
	}
	if v.BooleanValue != nil {
		return strconv.FormatBool(*v.BooleanValue)
	}

	return ""
}

// scalarInt extracts the named field as an int, defaulting to 0 when the
// field is absent or not numeric.
func scalarInt(fields map[string]Value, name string) int {
	n, err := strconv.Atoi(scalarString(fields, name))
	if err != nil {
		return 0
	}

	return n
}

func scalarFloat(fields map[string]Value, name string) float64 {
	f, err := strconv.ParseFloat(scalarString(fields, name), 64)
	if err != nil {
		return 0
	}

	return f
}

func intArray(fields map[string]Value, name string) []int {
	v, ok := fields[name]
	if !ok || v.ArrayValue == nil {
		return []int{}
	}

	ids := make([]int, 0, len(v.ArrayValue.Values))
	for _, el := range v.ArrayValue.Values {
		n, err := strconv.Atoi(el.IntegerValue)
		if err != nil {
			n = 0
		}
		ids = append(ids, n)
	}

	return ids
}

func stringValue(s string) Value {
	return Value{StringValue: s}
}

func integerValue(n int) Value {
	return Value{IntegerValue: strconv.Itoa(n)}
}

// EncodeBooking builds the wire document for a booking submission. Instance
// ids are encoded as an array of integerValues in cart order.
func EncodeBooking(email string, instanceIDs []int, timestamp string) Document {
	values := make([]Value, 0, len(instanceIDs))
	for _, id := range instanceIDs {
		values = append(values, integerValue(id))
	}

	return Document{
		Fields: map[string]Value{
			FieldEmail:       stringValue(email),
			FieldInstanceIDs: {ArrayValue: &ArrayValue{Values: values}},
			FieldTimestamp:   stringValue(timestamp),
		},
	}
}

// DecodeClassInstance maps a document onto a ClassInstance. It returns nil
// when date or teacher is missing: those two fields are mandatory for
// display and a record without them is skipped, not an error. All other
// fields default silently.
func DecodeClassInstance(doc Document) *models.ClassInstance {
	if doc.Fields == nil {
		return nil
	}

	date := scalarString(doc.Fields, FieldDate)
	teacher := scalarString(doc.Fields, FieldTeacher)

	if date == "" || teacher == "" {
		return nil
	}

	return &models.ClassInstance{
		ID:       scalarInt(doc.Fields, FieldID),
		CourseID: scalarInt(doc.Fields, FieldCourseID),
		Date:     date,
		Teacher:  teacher,
		Comment:  scalarString(doc.Fields, FieldComment),
	}
}

// DecodeBooking maps a document onto a Booking. Booking history is
// best-effort display data, so a malformed document decodes to zero values
// rather than failing.
func DecodeBooking(doc Document) models.Booking {
	if doc.Fields == nil {
		return models.Booking{InstanceIDs: []int{}}
	}

	return models.Booking{
		Email:       scalarString(doc.Fields, FieldEmail),
		InstanceIDs: intArray(doc.Fields, FieldInstanceIDs),
		Timestamp:   scalarString(doc.Fields, FieldTimestamp),
	}
}

// DecodeCourse maps a document onto a Course. All fields default silently.
func DecodeCourse(doc Document) models.Course {
	if doc.Fields == nil {
		return models.Course{}
	}

	return models.Course{
		ID:          scalarInt(doc.Fields, FieldID),
		Type:        scalarString(doc.Fields, "type"),
		DayOfWeek:   scalarString(doc.Fields, "dayOfWeek"),
		Time:        scalarString(doc.Fields, "time"),
		Capacity:    scalarInt(doc.Fields, "capacity"),
		Duration:    scalarInt(doc.Fields, "duration"),
		SkillLevel:  scalarString(doc.Fields, "skillLevel"),
		Price:       scalarFloat(doc.Fields, "price"),
		Description: scalarString(doc.Fields, "description"),
	}
}
