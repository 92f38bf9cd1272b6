package reference

// Kind идентифицирует тип referenceable-сущности в реестре резолвера.
type Kind string

const (
	KindUser     Kind = "user"
	KindProduct  Kind = "product"
	KindCategory Kind = "category"
	KindReview   Kind = "review"
)

func (k Kind) String() string {
	return string(k)
}

// Key - уникальный ключ ссылки. Для большинства сущностей это id,
// для категорий - имя.
type Key string

func (k Key) String() string {
	return string(k)
}

// Referenceable реализуют сущности, на которые можно ссылаться из других
// сервисов по стабильному ключу.
type Referenceable interface {
	ReferenceKind() Kind
	ReferenceKey() Key

	// IsStub сообщает, что значение содержит только свой ключ
	// и подлежит резолву.
	IsStub() bool
}

// Field описывает одно reference-поле сущности: вид ссылки, ключ заглушки
// и сеттер, записывающий результат обратно в поле. Set(nil) обнуляет поле.
type Field struct {
	Name string
	Kind Kind
	Key  Key
	Set  func(resolved any)
}

// Referencing реализуют сущности, у которых есть reference-поля.
// ReferenceFields возвращает только поля, в которых сейчас лежит заглушка,
// полностью заполненные и пустые поля не возвращаются.
type Referencing interface {
	ReferenceFields() []Field
}
