package state

import "time"

// Fixed demo dataset loaded on first activation. Ids are stable so the
// seed stays idempotent across reloads of the same flag store.

var seedDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

func SampleCategories() []Category {
	return []Category{
		{ID: "cat-1", Name: "Makanan Utama", Description: "Hidangan utama seperti nasi, mie, dan lauk", IsActive: true, CreatedAt: seedDate},
		{ID: "cat-2", Name: "Minuman", Description: "Minuman segar, kopi, teh, dan jus", IsActive: true, CreatedAt: seedDate},
		{ID: "cat-3", Name: "Makanan Ringan", Description: "Camilan dan makanan pembuka", IsActive: true, CreatedAt: seedDate},
		{ID: "cat-4", Name: "Dessert", Description: "Pencuci mulut dan makanan manis", IsActive: true, CreatedAt: seedDate},
	}
}

func SampleProducts() []Product {
	return []Product{
		{ID: "prod-1", Name: "Nasi Gudeg Yogya", Description: "Nasi gudeg khas Yogyakarta dengan ayam, telur, dan sambal krecek", Price: 25000, CategoryID: "cat-1", Stock: 50, Unit: "porsi", IsActive: true, CreatedAt: seedDate},
		{ID: "prod-2", Name: "Mie Ayam Bakso", Description: "Mie ayam dengan bakso, pangsit, dan sayuran segar", Price: 18000, CategoryID: "cat-1", Stock: 40, Unit: "mangkuk", IsActive: true, CreatedAt: seedDate},
		{ID: "prod-3", Name: "Nasi Goreng Spesial", Description: "Nasi goreng dengan telur, ayam, udang, dan kerupuk", Price: 22000, CategoryID: "cat-1", Stock: 30, Unit: "porsi", IsActive: true, CreatedAt: seedDate},
		{ID: "prod-4", Name: "Ayam Bakar Madu", Description: "Ayam bakar dengan bumbu madu dan nasi putih", Price: 28000, CategoryID: "cat-1", Stock: 25, Unit: "porsi", IsActive: true, CreatedAt: seedDate},
		{ID: "prod-5", Name: "Es Teh Manis", Description: "Teh manis dingin yang menyegarkan", Price: 5000, CategoryID: "cat-2", Stock: 100, Unit: "gelas", IsActive: true, CreatedAt: seedDate},
		{ID: "prod-6", Name: "Jus Alpukat", Description: "Jus alpukat segar dengan susu kental manis", Price: 12000, CategoryID: "cat-2", Stock: 20, Unit: "gelas", IsActive: true, CreatedAt: seedDate},
		{ID: "prod-7", Name: "Kopi Tubruk", Description: "Kopi hitam tradisional Indonesia", Price: 8000, CategoryID: "cat-2", Stock: 50, Unit: "cangkir", IsActive: true, CreatedAt: seedDate},
		{ID: "prod-8", Name: "Keripik Tempe", Description: "Keripik tempe renyah dengan bumbu balado", Price: 10000, CategoryID: "cat-3", Stock: 15, Unit: "bungkus", IsActive: true, CreatedAt: seedDate},
		{ID: "prod-9", Name: "Lumpia Semarang", Description: "Lumpia khas Semarang dengan isian rebung dan telur", Price: 15000, CategoryID: "cat-3", Stock: 20, Unit: "porsi", IsActive: true, CreatedAt: seedDate},
		{ID: "prod-10", Name: "Es Krim Vanila", Description: "Es krim vanila dengan topping cokelat", Price: 8000, CategoryID: "cat-4", Stock: 30, Unit: "cup", IsActive: true, CreatedAt: seedDate},
	}
}

func SampleTables() []Table {
	return []Table{
		{ID: "table-1", Number: "01", Area: "VIP", Capacity: 4, Status: TableKosong, CreatedAt: seedDate},
		{ID: "table-2", Number: "02", Area: "VIP", Capacity: 6, Status: TableKosong, CreatedAt: seedDate},
		{ID: "table-3", Number: "03", Area: "VIP", Capacity: 8, Status: TableDipesan, CreatedAt: seedDate},
		{ID: "table-4", Number: "04", Area: "Regular", Capacity: 4, Status: TableKosong, CreatedAt: seedDate},
		{ID: "table-5", Number: "05", Area: "Regular", Capacity: 4, Status: TableMakan, CreatedAt: seedDate},
		{ID: "table-6", Number: "06", Area: "Regular", Capacity: 4, Status: TableKosong, CreatedAt: seedDate},
		{ID: "table-7", Number: "07", Area: "Regular", Capacity: 6, Status: TableKosong, CreatedAt: seedDate},
		{ID: "table-8", Number: "08", Area: "Regular", Capacity: 4, Status: TableSelesai, CreatedAt: seedDate},
		{ID: "table-9", Number: "09", Area: "Outdoor", Capacity: 4, Status: TableKosong, CreatedAt: seedDate},
		{ID: "table-10", Number: "10", Area: "Outdoor", Capacity: 6, Status: TableKosong, CreatedAt: seedDate},
		{ID: "table-11", Number: "11", Area: "Outdoor", Capacity: 8, Status: TableDipesan, CreatedAt: seedDate},
		{ID: "table-12", Number: "12", Area: "Outdoor", Capacity: 4, Status: TableKosong, CreatedAt: seedDate},
	}
}

func SampleUsers() []User {
	return []User{
		{ID: "user-1", Username: "admin", Email: "admin@touchpay.com", Role: RoleAdmin, IsActive: true, CreatedAt: seedDate},
		{ID: "user-2", Username: "kasir1", Email: "kasir1@touchpay.com", Role: RoleKasir, IsActive: true, CreatedAt: seedDate},
		{ID: "user-3", Username: "waiter1", Email: "waiter1@touchpay.com", Role: RoleWaiter, IsActive: true, CreatedAt: seedDate},
	}
}
