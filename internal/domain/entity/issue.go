package entity

// IssueSource tags reports sent from this client.
const IssueSource = "waiter-console"

// DefaultIssueMessage is sent when the waiter does not type one.
const DefaultIssueMessage = "Issue reported from waiter dashboard. Please follow up with this user."

// IssueReport is a support request forwarded to the restaurant admin.
type IssueReport struct {
	RestaurantName string `json:"restaurantName"`
	WaiterName     string `json:"waiterName"`
	Role           string `json:"role"`
	Context        string `json:"context"` // Screen or command the waiter was on.
	Source         string `json:"source"`
	Message        string `json:"message"`
}
