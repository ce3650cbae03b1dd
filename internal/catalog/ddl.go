package catalog

func createTableTopic() Topic {
	return Topic{
		Name:        "CREATE TABLE",
		Description: "Defines a new table: its name, columns and column types. The table starts empty.",
		Syntax:      "CREATE TABLE table_name (column type, ...);",
		UseCase:     "Shaping the schema before any data exists.",
		Examples: []Example{
			{
				Title: "Create a products table",
				Steps: []Step{
					{
						Explanation: "Before the statement runs there is nothing to show; the table does not exist yet.",
						Query:       "CREATE TABLE Products (\n  ProductID INT PRIMARY KEY,\n  Name VARCHAR(100),\n  Price DECIMAL(10,2)\n);",
					},
					{
						Explanation: "Afterwards the table exists with three columns and zero rows. An empty table is still a table.",
						Query:       "CREATE TABLE Products (\n  ProductID INT PRIMARY KEY,\n  Name VARCHAR(100),\n  Price DECIMAL(10,2)\n);",
						Tables: []Table{
							{
								Name:    "Products",
								Columns: []string{"ProductID", "Name", "Price"},
							},
						},
					},
				},
			},
		},
	}
}

func alterTableTopic() Topic {
	return Topic{
		Name:        "ALTER TABLE",
		Description: "Changes an existing table's shape: add, rename or drop columns. Existing rows gain NULL in a newly added column.",
		Syntax:      "ALTER TABLE table_name ADD column type;",
		UseCase:     "Evolving the schema without recreating the table or losing data.",
		Examples: []Example{
			{
				Title: "Add an email column",
				Steps: []Step{
					{
						Explanation: "Customers before the change: three columns.",
						Query:       "ALTER TABLE Customers ADD Email VARCHAR(255);",
						Tables:      []Table{customersTable()},
					},
					{
						Explanation: "The new Email column appears on every row, filled with NULL until someone sets a value.",
						Query:       "ALTER TABLE Customers ADD Email VARCHAR(255);",
						Tables: []Table{
							{
								Name:    "Customers",
								Columns: []string{"CustomerID", "Name", "City", "Email"},
								Rows: []Row{
									updated(map[string]Value{"CustomerID": 1, "Name": "Alice", "City": "London", "Email": nil}, "Email"),
									updated(map[string]Value{"CustomerID": 2, "Name": "Bob", "City": "Paris", "Email": nil}, "Email"),
									updated(map[string]Value{"CustomerID": 3, "Name": "Carol", "City": "London", "Email": nil}, "Email"),
									updated(map[string]Value{"CustomerID": 4, "Name": "David", "City": "Berlin", "Email": nil}, "Email"),
									updated(map[string]Value{"CustomerID": 5, "Name": "Emma", "City": "Madrid", "Email": nil}, "Email"),
								},
							},
						},
					},
				},
			},
		},
	}
}

func dropTableTopic() Topic {
	return Topic{
		Name:        "DROP TABLE",
		Description: "Removes a table entirely: its data, its definition, its indexes. There is no undo.",
		Syntax:      "DROP TABLE table_name;",
		UseCase:     "Removing tables that are no longer needed, usually after their data has been migrated elsewhere.",
		Examples: []Example{
			{
				Title: "Drop the orders table",
				Steps: []Step{
					{
						Explanation: "The Orders table, alive and holding five rows.",
						Query:       "DROP TABLE Orders;",
						Tables:      []Table{ordersTable()},
					},
					{
						Explanation: "After DROP TABLE the table is gone. Not empty: gone. Any query against it is now an error.",
						Query:       "DROP TABLE Orders;",
					},
				},
			},
		},
	}
}
