package catalog

func insertTopic() Topic {
	return Topic{
		Name:        "INSERT",
		Description: "Adds new rows to a table. Columns not listed receive their default value or NULL.",
		Syntax:      "INSERT INTO table_name (columns) VALUES (values);",
		UseCase:     "Creating records: a new customer signs up, a new order is placed.",
		Examples: []Example{
			{
				Title: "Insert a new customer",
				Steps: []Step{
					{
						Explanation: "Customers before the insert: five rows.",
						Query:       "INSERT INTO Customers (CustomerID, Name, City)\nVALUES (6, 'Frank', 'Rome');",
						Tables:      []Table{customersTable()},
					},
					{
						Explanation: "After the insert the table has a sixth row. The new row is marked below.",
						Query:       "INSERT INTO Customers (CustomerID, Name, City)\nVALUES (6, 'Frank', 'Rome');",
						Tables: []Table{
							{
								Name:    "Customers",
								Columns: []string{"CustomerID", "Name", "City"},
								Rows: []Row{
									row(map[string]Value{"CustomerID": 1, "Name": "Alice", "City": "London"}),
									row(map[string]Value{"CustomerID": 2, "Name": "Bob", "City": "Paris"}),
									row(map[string]Value{"CustomerID": 3, "Name": "Carol", "City": "London"}),
									row(map[string]Value{"CustomerID": 4, "Name": "David", "City": "Berlin"}),
									row(map[string]Value{"CustomerID": 5, "Name": "Emma", "City": "Madrid"}),
									inserted(map[string]Value{"CustomerID": 6, "Name": "Frank", "City": "Rome"}),
								},
							},
						},
					},
				},
			},
		},
	}
}

func updateTopic() Topic {
	return Topic{
		Name:        "UPDATE",
		Description: "Changes values in existing rows. The WHERE clause decides which rows; without it, every row changes.",
		Syntax:      "UPDATE table_name SET column = value WHERE condition;",
		UseCase:     "Corrections and state changes: a customer moves, an order amount is amended.",
		Examples: []Example{
			{
				Title: "Move a customer",
				Steps: []Step{
					{
						Explanation: "Bob currently lives in Paris.",
						Query:       "UPDATE Customers SET City = 'Lyon' WHERE Name = 'Bob';",
						Tables:      []Table{customersTable()},
					},
					{
						Explanation: "Only Bob's row changes, and within it only the City cell. Everything else is untouched.",
						Query:       "UPDATE Customers SET City = 'Lyon' WHERE Name = 'Bob';",
						Tables: []Table{
							{
								Name:    "Customers",
								Columns: []string{"CustomerID", "Name", "City"},
								Rows: []Row{
									row(map[string]Value{"CustomerID": 1, "Name": "Alice", "City": "London"}),
									updated(map[string]Value{"CustomerID": 2, "Name": "Bob", "City": "Lyon"}, "City"),
									row(map[string]Value{"CustomerID": 3, "Name": "Carol", "City": "London"}),
									row(map[string]Value{"CustomerID": 4, "Name": "David", "City": "Berlin"}),
									row(map[string]Value{"CustomerID": 5, "Name": "Emma", "City": "Madrid"}),
								},
							},
						},
					},
				},
			},
		},
	}
}

func deleteTopic() Topic {
	return Topic{
		Name:        "DELETE",
		Description: "Removes rows matching a condition. Like UPDATE, omitting the WHERE clause affects the whole table.",
		Syntax:      "DELETE FROM table_name WHERE condition;",
		UseCase:     "Retiring data: cancelled orders, accounts closed under a retention policy.",
		Examples: []Example{
			{
				Title: "Delete small orders",
				Steps: []Step{
					{
						Explanation: "Orders under 100 are about to be removed. The doomed rows are marked.",
						Query:       "DELETE FROM Orders WHERE Amount < 100;",
						Tables: []Table{
							{
								Name:    "Orders",
								Columns: []string{"OrderID", "CustomerID", "Amount"},
								Rows: []Row{
									row(map[string]Value{"OrderID": 101, "CustomerID": 1, "Amount": 150}),
									highlight(map[string]Value{"OrderID": 102, "CustomerID": 2, "Amount": 75}),
									row(map[string]Value{"OrderID": 103, "CustomerID": 1, "Amount": 220}),
									row(map[string]Value{"OrderID": 104, "CustomerID": 3, "Amount": 180}),
									highlight(map[string]Value{"OrderID": 105, "CustomerID": 6, "Amount": 90}),
								},
							},
						},
					},
					{
						Explanation: "After the delete only three orders remain.",
						Query:       "DELETE FROM Orders WHERE Amount < 100;",
						Tables: []Table{
							{
								Name:    "Orders",
								Columns: []string{"OrderID", "CustomerID", "Amount"},
								Rows: []Row{
									row(map[string]Value{"OrderID": 101, "CustomerID": 1, "Amount": 150}),
									row(map[string]Value{"OrderID": 103, "CustomerID": 1, "Amount": 220}),
									row(map[string]Value{"OrderID": 104, "CustomerID": 3, "Amount": 180}),
								},
							},
						},
					},
				},
			},
		},
	}
}
