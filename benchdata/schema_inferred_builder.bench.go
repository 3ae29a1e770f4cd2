//go:build ignore

// Schema evaluation, schema-inferring style: tables and columns are
// declared through generic constructors, so every declaration costs the
// type checker one instantiation.
package northwind_inferred

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

type CustomerRow struct {
	ID          string
	CompanyName string
	ContactName string
	Country     string
	City        string
}

type EmployeeRow struct {
	ID        int64
	LastName  string
	FirstName string
	Title     string
	ReportsTo int64
}

type SupplierRow struct {
	ID          int64
	CompanyName string
	Country     string
	City        string
}

type ProductRow struct {
	ID           int64
	Name         string
	SupplierID   int64
	UnitPrice    float64
	UnitsInStock int16
	Discontinued bool
}

type OrderRow struct {
	ID         int64
	CustomerID string
	EmployeeID int64
	OrderDate  int64
	ShipCity   string
	Freight    float64
}

type OrderDetailRow struct {
	OrderID   int64
	ProductID int64
	UnitPrice float64
	Quantity  int16
	Discount  float32
}

var (
	Customers = NewTable[CustomerRow]("customers")

	CustomerID      = NewColumn[string]("customers", "customer_id")
	CustomerCompany = NewColumn[string]("customers", "company_name")
	CustomerContact = NewColumn[string]("customers", "contact_name")
	CustomerCountry = NewColumn[string]("customers", "country")
	CustomerCity    = NewColumn[string]("customers", "city")
)

var (
	Employees = NewTable[EmployeeRow]("employees")

	EmployeeID        = NewColumn[int64]("employees", "employee_id")
	EmployeeLastName  = NewColumn[string]("employees", "last_name")
	EmployeeFirstName = NewColumn[string]("employees", "first_name")
	EmployeeTitle     = NewColumn[string]("employees", "title")
	EmployeeReportsTo = NewColumn[int64]("employees", "reports_to")
)

var (
	Suppliers = NewTable[SupplierRow]("suppliers")

	SupplierID      = NewColumn[int64]("suppliers", "supplier_id")
	SupplierCompany = NewColumn[string]("suppliers", "company_name")
	SupplierCountry = NewColumn[string]("suppliers", "country")
	SupplierCity    = NewColumn[string]("suppliers", "city")
)

var (
	Products = NewTable[ProductRow]("products")

	ProductID           = NewColumn[int64]("products", "product_id")
	ProductName         = NewColumn[string]("products", "product_name")
	ProductSupplierID   = NewColumn[int64]("products", "supplier_id")
	ProductUnitPrice    = NewColumn[float64]("products", "unit_price")
	ProductUnitsInStock = NewColumn[int16]("products", "units_in_stock")
	ProductDiscontinued = NewColumn[bool]("products", "discontinued")
)

var (
	Orders = NewTable[OrderRow]("orders")

	OrderID         = NewColumn[int64]("orders", "order_id")
	OrderCustomerID = NewColumn[string]("orders", "customer_id")
	OrderEmployeeID = NewColumn[int64]("orders", "employee_id")
	OrderDate       = NewColumn[int64]("orders", "order_date")
	OrderShipCity   = NewColumn[string]("orders", "ship_city")
	OrderFreight    = NewColumn[float64]("orders", "freight")
)

var (
	OrderDetails = NewTable[OrderDetailRow]("order_details")

	DetailOrderID   = NewColumn[int64]("order_details", "order_id")
	DetailProductID = NewColumn[int64]("order_details", "product_id")
	DetailUnitPrice = NewColumn[float64]("order_details", "unit_price")
	DetailQuantity  = NewColumn[int16]("order_details", "quantity")
	DetailDiscount  = NewColumn[float32]("order_details", "discount")
)
