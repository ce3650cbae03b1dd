package catalog

func selectTopic() Topic {
	return Topic{
		Name:        "SELECT",
		Description: "Retrieves columns from a table. The result is a new table containing only the requested columns.",
		Syntax:      "SELECT column1, column2 FROM table_name;",
		UseCase:     "Reading data: pick exactly the columns a report or screen needs instead of pulling whole rows.",
		Examples: []Example{
			{
				Title: "Select specific columns",
				Steps: []Step{
					{
						Explanation: "We start with the full Customers table. Every row and every column is available.",
						Query:       "SELECT Name, City FROM Customers;",
						Tables:      []Table{customersTable()},
					},
					{
						Explanation: "The query projects just Name and City. Row count is unchanged; only the columns narrow.",
						Query:       "SELECT Name, City FROM Customers;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"Name", "City"},
								Rows: []Row{
									row(map[string]Value{"Name": "Alice", "City": "London"}),
									row(map[string]Value{"Name": "Bob", "City": "Paris"}),
									row(map[string]Value{"Name": "Carol", "City": "London"}),
									row(map[string]Value{"Name": "David", "City": "Berlin"}),
									row(map[string]Value{"Name": "Emma", "City": "Madrid"}),
								},
							},
						},
					},
				},
			},
			{
				Title: "Select everything",
				Steps: []Step{
					{
						Explanation: "SELECT * keeps every column. The result is a copy of the source table.",
						Query:       "SELECT * FROM Customers;",
						Tables:      []Table{customersTable()},
					},
				},
			},
		},
	}
}

func whereTopic() Topic {
	return Topic{
		Name:        "WHERE",
		Description: "Filters rows with a condition. Only rows for which the condition is true survive into the result.",
		Syntax:      "SELECT * FROM table_name WHERE condition;",
		UseCase:     "Narrowing a result set: orders over a threshold, customers in one city, rows in a date range.",
		Examples: []Example{
			{
				Title: "Filter with a numeric value",
				Steps: []Step{
					{
						Explanation: "We start with the full Orders table, five rows in all.",
						Query:       "SELECT * FROM Orders WHERE Amount > 100;",
						Tables:      []Table{ordersTable()},
					},
					{
						Explanation: "The WHERE clause keeps only rows whose Amount exceeds 100. Orders 101, 103 and 104 pass; the rest are dropped.",
						Query:       "SELECT * FROM Orders WHERE Amount > 100;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"OrderID", "CustomerID", "Amount"},
								Rows: []Row{
									highlight(map[string]Value{"OrderID": 101, "CustomerID": 1, "Amount": 150}),
									highlight(map[string]Value{"OrderID": 103, "CustomerID": 1, "Amount": 220}),
									highlight(map[string]Value{"OrderID": 104, "CustomerID": 3, "Amount": 180}),
								},
							},
						},
					},
				},
			},
			{
				Title: "Filter with text",
				Steps: []Step{
					{
						Explanation: "Text comparisons work the same way. Here we look for customers based in London.",
						Query:       "SELECT * FROM Customers WHERE City = 'London';",
						Tables:      []Table{customersTable()},
					},
					{
						Explanation: "Alice and Carol match; every other row is filtered out.",
						Query:       "SELECT * FROM Customers WHERE City = 'London';",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"CustomerID", "Name", "City"},
								Rows: []Row{
									highlight(map[string]Value{"CustomerID": 1, "Name": "Alice", "City": "London"}),
									highlight(map[string]Value{"CustomerID": 3, "Name": "Carol", "City": "London"}),
								},
							},
						},
					},
				},
			},
		},
	}
}

func orderByTopic() Topic {
	return Topic{
		Name:        "ORDER BY",
		Description: "Sorts the result rows by one or more columns, ascending by default or descending with DESC.",
		Syntax:      "SELECT * FROM table_name ORDER BY column DESC;",
		UseCase:     "Presenting results in a meaningful order: largest orders first, names alphabetically.",
		Examples: []Example{
			{
				Title: "Sort orders by amount",
				Steps: []Step{
					{
						Explanation: "Orders arrive in insertion order, which means nothing to a reader.",
						Query:       "SELECT * FROM Orders ORDER BY Amount DESC;",
						Tables:      []Table{ordersTable()},
					},
					{
						Explanation: "ORDER BY Amount DESC rearranges the same five rows from largest to smallest amount.",
						Query:       "SELECT * FROM Orders ORDER BY Amount DESC;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"OrderID", "CustomerID", "Amount"},
								Rows: []Row{
									row(map[string]Value{"OrderID": 103, "CustomerID": 1, "Amount": 220}),
									row(map[string]Value{"OrderID": 104, "CustomerID": 3, "Amount": 180}),
									row(map[string]Value{"OrderID": 101, "CustomerID": 1, "Amount": 150}),
									row(map[string]Value{"OrderID": 105, "CustomerID": 6, "Amount": 90}),
									row(map[string]Value{"OrderID": 102, "CustomerID": 2, "Amount": 75}),
								},
							},
						},
					},
				},
			},
		},
	}
}
