// Package validate holds the pure field-rule checks applied to registration
// payloads before anything is persisted. Every check fails closed: a missing
// field arrives as an empty string and fails its pattern.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Error carries the human-readable reason a field rule failed. Handlers map
// it to a 400 response with the message untouched.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func failf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

var (
	namePattern  = regexp.MustCompile(`^[A-Z][a-zA-Z]*$`)
	phonePattern = regexp.MustCompile(`^[0-9]{9}$`)
)

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// The normalized form is the uniqueness key of the credential store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FirstName requires an uppercase first letter followed by letters only.
func FirstName(name string) error {
	if !namePattern.MatchString(name) {
		return failf("Invalid first name: only letters allowed, must start with uppercase")
	}
	return nil
}

// LastName applies the same pattern as FirstName.
func LastName(name string) error {
	if !namePattern.MatchString(name) {
		return failf("Invalid last name: only letters allowed, must start with uppercase")
	}
	return nil
}

// Phone requires exactly 9 digits with no separators.
func Phone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return failf("Invalid phone number: must be 9 digits number and no symbols allowed")
	}
	return nil
}

// Age parses the raw value as an integer. There is no range check beyond
// being a number.
func Age(raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, failf("Age must be a number")
	}
	return age, nil
}

// AllowedBackgroundCheckStatuses are the only accepted values for a
// volunteer's background check field.
var AllowedBackgroundCheckStatuses = []string{"in progress", "completed"}

// BackgroundCheck requires the status to be present and one of the allowed
// values, exactly.
func BackgroundCheck(status string) error {
	if status == "" {
		return failf("Please select your background check status")
	}
	for _, allowed := range AllowedBackgroundCheckStatuses {
		if status == allowed {
			return nil
		}
	}
	return failf("Background check must be 'in progress' or 'completed'")
}

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var dayparts = []string{"morning", "afternoon", "evening"}

// allowedAvailability is the fixed 21-slot weekday x daypart label set.
var allowedAvailability = func() map[string]struct{} {
	slots := make(map[string]struct{}, len(weekdays)*len(dayparts))
	for _, day := range weekdays {
		for _, part := range dayparts {
			slots[day+" "+part] = struct{}{}
		}
	}
	return slots
}()

// Availability requires every submitted slot label to belong to the fixed
// weekday x daypart set. Unknown labels are named in the failure message.
func Availability(slots []string) error {
	var invalid []string
	for _, slot := range slots {
		if _, ok := allowedAvailability[slot]; !ok {
			invalid = append(invalid, slot)
		}
	}
	if len(invalid) > 0 {
		return failf("Invalid availability option(s): %s", strings.Join(invalid, ", "))
	}
	return nil
}

// PasswordsMatch requires the registration password and its confirmation
// field to be equal. It runs before any persistence.
func PasswordsMatch(password, confirmation string) error {
	if password != confirmation {
		return failf("Passwords do not match")
	}
	return nil
}
