package entities

// Status - производный статус заказа, вычисляется по журналу
// status-tracker-записей, в строке заказа не хранится.
type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in_progress"
	StatusInAWay     Status = "in_a_way"
	StatusDelivered  Status = "delivered"
	StatusDeleted    Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusInProgress, StatusInAWay, StatusDelivered, StatusDeleted:
		return true
	default:
		return false
	}
}

// Next возвращает следующий статус обычного цикла выполнения заказа.
// delivered и deleted терминальные - Next возвращает их как есть.
// Порядок нигде не энфорсится, это только хелпер для прогрессии.
func (s Status) Next() Status {
	switch s {
	case StatusCreated:
		return StatusInProgress
	case StatusInProgress:
		return StatusInAWay
	case StatusInAWay:
		return StatusDelivered
	default:
		return s
	}
}
