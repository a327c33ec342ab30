package request

// WorkingHoursItem is one entry of the replace body, which is a bare JSON array.
type WorkingHoursItem struct {
	Weekday string `json:"weekday" binding:"required"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
}
