package catalog

func innerJoinTopic() Topic {
	return Topic{
		Name:        "INNER JOIN",
		Description: "Combines rows from two tables where the join condition matches. Rows without a partner on the other side are dropped.",
		Syntax:      "SELECT ... FROM a INNER JOIN b ON a.key = b.key;",
		UseCase:     "Stitching related entities together: each order with the customer who placed it.",
		Examples: []Example{
			{
				Title: "Match orders to customers",
				Steps: []Step{
					{
						Explanation: "Two source tables. Orders carry a CustomerID pointing into Customers. Note order 105 references customer 6, which does not exist, and customers 4 and 5 have no orders.",
						Query:       "SELECT o.OrderID, c.Name, o.Amount\nFROM Orders o\nINNER JOIN Customers c ON o.CustomerID = c.CustomerID;",
						Tables:      []Table{ordersTable(), customersTable()},
					},
					{
						Explanation: "Only rows with a match on both sides survive. Order 105 disappears (no customer 6), and David and Emma contribute nothing (no orders).",
						Query:       "SELECT o.OrderID, c.Name, o.Amount\nFROM Orders o\nINNER JOIN Customers c ON o.CustomerID = c.CustomerID;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"OrderID", "Name", "Amount"},
								Rows: []Row{
									highlight(map[string]Value{"OrderID": 101, "Name": "Alice", "Amount": 150}),
									highlight(map[string]Value{"OrderID": 102, "Name": "Bob", "Amount": 75}),
									highlight(map[string]Value{"OrderID": 103, "Name": "Alice", "Amount": 220}),
									highlight(map[string]Value{"OrderID": 104, "Name": "Carol", "Amount": 180}),
								},
							},
						},
					},
				},
			},
		},
	}
}

func leftJoinTopic() Topic {
	return Topic{
		Name:        "LEFT JOIN",
		Description: "Keeps every row of the left table. Where the right side has no match, its columns come back as NULL.",
		Syntax:      "SELECT ... FROM a LEFT JOIN b ON a.key = b.key;",
		UseCase:     "Finding what is missing: all customers, including the ones who never ordered.",
		Examples: []Example{
			{
				Title: "All customers, orders optional",
				Steps: []Step{
					{
						Explanation: "Customers is the left table, so all five customers are guaranteed a place in the result.",
						Query:       "SELECT c.Name, o.OrderID, o.Amount\nFROM Customers c\nLEFT JOIN Orders o ON c.CustomerID = o.CustomerID;",
						Tables:      []Table{customersTable(), ordersTable()},
					},
					{
						Explanation: "David and Emma have no orders, so their order columns are NULL. The unmatched rows are marked below.",
						Query:       "SELECT c.Name, o.OrderID, o.Amount\nFROM Customers c\nLEFT JOIN Orders o ON c.CustomerID = o.CustomerID;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"Name", "OrderID", "Amount"},
								Rows: []Row{
									row(map[string]Value{"Name": "Alice", "OrderID": 101, "Amount": 150}),
									row(map[string]Value{"Name": "Alice", "OrderID": 103, "Amount": 220}),
									row(map[string]Value{"Name": "Bob", "OrderID": 102, "Amount": 75}),
									row(map[string]Value{"Name": "Carol", "OrderID": 104, "Amount": 180}),
									unmatched(map[string]Value{"Name": "David", "OrderID": nil, "Amount": nil}),
									unmatched(map[string]Value{"Name": "Emma", "OrderID": nil, "Amount": nil}),
								},
							},
						},
					},
				},
			},
		},
	}
}

func rightJoinTopic() Topic {
	return Topic{
		Name:        "RIGHT JOIN",
		Description: "The mirror of LEFT JOIN: keeps every row of the right table, filling the left side with NULL where nothing matches.",
		Syntax:      "SELECT ... FROM a RIGHT JOIN b ON a.key = b.key;",
		UseCase:     "Auditing references: every order, even ones pointing at a customer that no longer exists.",
		Examples: []Example{
			{
				Title: "All orders, customers optional",
				Steps: []Step{
					{
						Explanation: "Orders is the right table here, so all five orders survive regardless of whether their customer exists.",
						Query:       "SELECT c.Name, o.OrderID, o.Amount\nFROM Customers c\nRIGHT JOIN Orders o ON c.CustomerID = o.CustomerID;",
						Tables:      []Table{customersTable(), ordersTable()},
					},
					{
						Explanation: "Order 105 references customer 6, which does not exist, so its Name column is NULL.",
						Query:       "SELECT c.Name, o.OrderID, o.Amount\nFROM Customers c\nRIGHT JOIN Orders o ON c.CustomerID = o.CustomerID;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"Name", "OrderID", "Amount"},
								Rows: []Row{
									row(map[string]Value{"Name": "Alice", "OrderID": 101, "Amount": 150}),
									row(map[string]Value{"Name": "Bob", "OrderID": 102, "Amount": 75}),
									row(map[string]Value{"Name": "Alice", "OrderID": 103, "Amount": 220}),
									row(map[string]Value{"Name": "Carol", "OrderID": 104, "Amount": 180}),
									unmatched(map[string]Value{"Name": nil, "OrderID": 105, "Amount": 90}),
								},
							},
						},
					},
				},
			},
		},
	}
}

func fullJoinTopic() Topic {
	return Topic{
		Name:        "FULL OUTER JOIN",
		Description: "Keeps every row from both tables. Matching rows combine; everything else is padded with NULL on the missing side.",
		Syntax:      "SELECT ... FROM a FULL OUTER JOIN b ON a.key = b.key;",
		UseCase:     "Reconciliation: one pass that surfaces customers without orders and orders without customers.",
		Examples: []Example{
			{
				Title: "Everything from both sides",
				Steps: []Step{
					{
						Explanation: "Both tables contribute all their rows. Matches combine into one row; the rest appear alone.",
						Query:       "SELECT c.Name, o.OrderID, o.Amount\nFROM Customers c\nFULL OUTER JOIN Orders o ON c.CustomerID = o.CustomerID;",
						Tables:      []Table{customersTable(), ordersTable()},
					},
					{
						Explanation: "Seven rows: four matches, David and Emma with NULL order columns, and order 105 with a NULL name.",
						Query:       "SELECT c.Name, o.OrderID, o.Amount\nFROM Customers c\nFULL OUTER JOIN Orders o ON c.CustomerID = o.CustomerID;",
						Tables: []Table{
							{
								Name:    "Result",
								Columns: []string{"Name", "OrderID", "Amount"},
								Rows: []Row{
									row(map[string]Value{"Name": "Alice", "OrderID": 101, "Amount": 150}),
									row(map[string]Value{"Name": "Alice", "OrderID": 103, "Amount": 220}),
									row(map[string]Value{"Name": "Bob", "OrderID": 102, "Amount": 75}),
									row(map[string]Value{"Name": "Carol", "OrderID": 104, "Amount": 180}),
									unmatched(map[string]Value{"Name": "David", "OrderID": nil, "Amount": nil}),
									unmatched(map[string]Value{"Name": "Emma", "OrderID": nil, "Amount": nil}),
									unmatched(map[string]Value{"Name": nil, "OrderID": 105, "Amount": 90}),
								},
							},
						},
					},
				},
			},
		},
	}
}
