package catalog

// Shared sample tables used across topics. Each call returns a fresh value;
// the catalog never mutates them, but callers should not either.

func row(c map[string]Value) Row       { return Row{Cells: c} }
func highlight(c map[string]Value) Row { return Row{Cells: c, Highlight: true} }
func unmatched(c map[string]Value) Row { return Row{Cells: c, Unmatched: true} }
func inserted(c map[string]Value) Row  { return Row{Cells: c, Inserted: true} }

func updated(c map[string]Value, cols ...string) Row {
	return Row{Cells: c, Updated: true, UpdatedCells: cols}
}

func customersTable() Table {
	return Table{
		Name:    "Customers",
		Columns: []string{"CustomerID", "Name", "City"},
		Rows: []Row{
			row(map[string]Value{"CustomerID": 1, "Name": "Alice", "City": "London"}),
			row(map[string]Value{"CustomerID": 2, "Name": "Bob", "City": "Paris"}),
			row(map[string]Value{"CustomerID": 3, "Name": "Carol", "City": "London"}),
			row(map[string]Value{"CustomerID": 4, "Name": "David", "City": "Berlin"}),
			row(map[string]Value{"CustomerID": 5, "Name": "Emma", "City": "Madrid"}),
		},
	}
}

func ordersTable() Table {
	return Table{
		Name:    "Orders",
		Columns: []string{"OrderID", "CustomerID", "Amount"},
		Rows: []Row{
			row(map[string]Value{"OrderID": 101, "CustomerID": 1, "Amount": 150}),
			row(map[string]Value{"OrderID": 102, "CustomerID": 2, "Amount": 75}),
			row(map[string]Value{"OrderID": 103, "CustomerID": 1, "Amount": 220}),
			row(map[string]Value{"OrderID": 104, "CustomerID": 3, "Amount": 180}),
			row(map[string]Value{"OrderID": 105, "CustomerID": 6, "Amount": 90}),
		},
	}
}

func employeesTable() Table {
	return Table{
		Name:    "Employees",
		Columns: []string{"EmployeeID", "Name", "Department", "Salary"},
		Rows: []Row{
			row(map[string]Value{"EmployeeID": 1, "Name": "Grace", "Department": "Engineering", "Salary": 95000}),
			row(map[string]Value{"EmployeeID": 2, "Name": "Henry", "Department": "Engineering", "Salary": 85000}),
			row(map[string]Value{"EmployeeID": 3, "Name": "Irene", "Department": "Sales", "Salary": 60000}),
			row(map[string]Value{"EmployeeID": 4, "Name": "Jack", "Department": "Sales", "Salary": 72000}),
			row(map[string]Value{"EmployeeID": 5, "Name": "Kara", "Department": "HR", "Salary": 55000}),
		},
	}
}
