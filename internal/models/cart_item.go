package models

// CartItem is a snapshot of a ClassInstance taken at add-time. Later changes
// to the instance do not propagate into the cart.
type CartItem struct {
	InstanceID int    `json:"instance_id"`
	CourseID   int    `json:"course_id"`
	Date       string `json:"date"`
	Teacher    string `json:"teacher"`
}

func NewCartItem(instance ClassInstance) CartItem {
	return CartItem{
		InstanceID: instance.ID,
		CourseID:   instance.CourseID,
		Date:       instance.Date,
		Teacher:    instance.Teacher,
	}
}
