//go:build ignore

// Query evaluation, schema-inferring manual-builder style: explicit
// generic Select/Join/Where chains. Every join widens the row type, so the
// checker instantiates a new Joined shape per step.
package northwind_builder

type Column[T any] struct {
	table string
	name  string
}

func NewColumn[T any](table, name string) Column[T] {
	return Column[T]{table: table, name: name}
}

type Table[T any] struct {
	name string
}

func NewTable[T any](name string) Table[T] {
	return Table[T]{name: name}
}

type Expr struct {
	sql string
}

func Eq[T comparable](col Column[T], v T) Expr {
	return Expr{sql: col.name + " = ?"}
}

func Gt[T int64 | float64 | int16](col Column[T], v T) Expr {
	return Expr{sql: col.name + " > ?"}
}

func On[T comparable](left, right Column[T]) Expr {
	return Expr{sql: left.name + " = " + right.name}
}

func And(exprs ...Expr) Expr {
	return Expr{sql: "and"}
}

type Joined[L, R any] struct {
	Left  L
	Right R
}

type Query[T any] struct {
	table string
	conds []Expr
	order []string
	limit int
}

func Select[T any](t Table[T]) Query[T] {
	return Query[T]{table: t.name}
}

func Join[L, R any](q Query[L], t Table[R], on Expr) Query[Joined[L, R]] {
	return Query[Joined[L, R]]{table: q.table + "+" + t.name, conds: q.conds}
}

func (q Query[T]) Where(e Expr) Query[T] {
	q.conds = append(q.conds, e)

	return q
}

func (q Query[T]) OrderByDesc(col string) Query[T] {
	q.order = append(q.order, col+" desc")

	return q
}

func (q Query[T]) Limit(n int) Query[T] {
	q.limit = n

	return q
}

type CustomerRow struct {
	ID      string
	Company string
	Country string
}

type OrderRow struct {
	ID         int64
	CustomerID string
	OrderDate  int64
	Freight    float64
}

type OrderDetailRow struct {
	OrderID   int64
	ProductID int64
	Quantity  int16
}

type ProductRow struct {
	ID         int64
	Name       string
	SupplierID int64
}

var (
	Customers    = NewTable[CustomerRow]("customers")
	Orders       = NewTable[OrderRow]("orders")
	OrderDetails = NewTable[OrderDetailRow]("order_details")
	Products     = NewTable[ProductRow]("products")

	CustomerID      = NewColumn[string]("customers", "customer_id")
	CustomerCountry = NewColumn[string]("customers", "country")
	OrderID         = NewColumn[int64]("orders", "order_id")
	OrderCustomerID = NewColumn[string]("orders", "customer_id")
	OrderFreight    = NewColumn[float64]("orders", "freight")
	DetailOrderID   = NewColumn[int64]("order_details", "order_id")
	DetailProductID = NewColumn[int64]("order_details", "product_id")
	ProductID       = NewColumn[int64]("products", "product_id")
)

var heavyGermanOrders = Select(Orders).
	Where(Gt(OrderFreight, 100.0)).
	OrderByDesc("freight").
	Limit(50)

var ordersWithCustomers = Join(
	Select(Orders),
	Customers,
	On(OrderCustomerID, CustomerID),
).Where(Eq(CustomerCountry, "Germany"))

var orderLines = Join(
	Join(
		Join(Select(Orders), Customers, On(OrderCustomerID, CustomerID)),
		OrderDetails,
		Expr{sql: "orders.order_id = order_details.order_id"},
	),
	Products,
	On(DetailProductID, ProductID),
).Limit(100)
