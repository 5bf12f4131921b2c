package local

import (
	"github.com/shopspring/decimal"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	dbtypes "github.com/tiendalocal/storefront-backend/pkg/db/types"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

func seedCategories() []models.Category {
	rows := []struct {
		id, name, icon string
	}{
		{"1", "Celulares y Tables", "smartphone"},
		{"2", "Computadores", "computer"},
		{"3", "Impresoras Scaners", "print"},
		{"4", "Redes", "router"},
		{"5", "Perifericos", "mouse"},
		{"6", "Almacenamiento", "sd_storage"},
		{"7", "Pantalla y Televisores", "tv"},
		{"8", "Dispositivos de Sonido", "headphones"},
		{"9", "Componentes", "memory"},
		{"10", "Dispositivos de carga", "battery_charging_full"},
		{"11", "Morrales", "backpack"},
	}
	out := make([]models.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Category{
			ID:    r.id,
			Name:  r.name,
			Icon:  r.icon,
			Image: "https://picsum.photos/seed/cat" + r.id + "/200/200",
		})
	}
	return out
}

func seedProducts() []models.Product {
	rows := []struct {
		id, sku, name, description, category, imageSeed string
		price                                           int64
		specs                                           dbtypes.StringMap
		featured                                        bool
	}{
		{"101", "CEL-001", "iPhone 15 Pro", "El ultimo iPhone con chip A17 Pro y diseno de titanio.", "Celulares y Tables", "iphone15", 4000000, dbtypes.StringMap{"Marca": "Apple", "Almacenamiento": "256GB"}, true},
		{"102", "TAB-001", "Samsung Galaxy Tab S9", "Tablet Android de alto rendimiento con S Pen incluido.", "Celulares y Tables", "tabs9", 3200000, dbtypes.StringMap{"Marca": "Samsung", "Pantalla": "11 pulgadas"}, true},
		{"201", "LAP-001", "MacBook Air M2", "Potencia y portabilidad con el chip M2 de Apple.", "Computadores", "macbook", 4800000, dbtypes.StringMap{"Marca": "Apple", "Procesador": "M2", "RAM": "8GB"}, true},
		{"202", "PC-001", "Dell XPS 15", "Laptop premium con pantalla InfinityEdge y alto rendimiento.", "Computadores", "dellxps", 6000000, dbtypes.StringMap{"Marca": "Dell", "Procesador": "Intel i7", "RAM": "16GB"}, false},
		{"301", "IMP-001", "Epson EcoTank L3250", "Impresora multifuncional con sistema de tanque de tinta.", "Impresoras Scaners", "epson", 920000, dbtypes.StringMap{"Marca": "Epson", "Tipo": "Inyeccion de tinta"}, false},
		{"401", "NET-001", "TP-Link Archer AX50", "Router Wi-Fi 6 de doble banda para alta velocidad.", "Redes", "router", 520000, dbtypes.StringMap{"Marca": "TP-Link", "Velocidad": "AX3000"}, false},
		{"501", "PER-001", "Logitech MX Master 3S", "El raton de productividad definitivo con clic silencioso.", "Perifericos", "mouse", 400000, dbtypes.StringMap{"Marca": "Logitech", "Conexion": "Bluetooth"}, true},
		{"502", "PER-002", "Teclado Keychron K2", "Teclado mecanico inalambrico compacto.", "Perifericos", "keyboard", 360000, dbtypes.StringMap{"Marca": "Keychron", "Switch": "Brown"}, false},
		{"601", "STO-001", "Samsung T7 Shield 1TB", "SSD portatil resistente y rapido.", "Almacenamiento", "ssd", 440000, dbtypes.StringMap{"Marca": "Samsung", "Capacidad": "1TB"}, true},
		{"701", "MON-001", "LG UltraGear 27\"", "Monitor gaming con 144Hz y 1ms de respuesta.", "Pantalla y Televisores", "monitor", 1200000, dbtypes.StringMap{"Marca": "LG", "Resolucion": "QHD"}, true},
		{"801", "AUD-001", "Sony WH-1000XM5", "Auriculares con la mejor cancelacion de ruido del mercado.", "Dispositivos de Sonido", "sonywh", 1400000, dbtypes.StringMap{"Marca": "Sony", "Bateria": "30h"}, true},
		{"901", "CMP-001", "AMD Ryzen 7 7800X3D", "El mejor procesador para gaming.", "Componentes", "ryzen", 1800000, dbtypes.StringMap{"Marca": "AMD", "Nucleos": "8"}, true},
		{"1001", "PWR-001", "Anker 737 Power Bank", "Bateria externa de alta capacidad con carga rapida.", "Dispositivos de carga", "anker", 600000, dbtypes.StringMap{"Marca": "Anker", "Capacidad": "24000mAh"}, false},
		{"1101", "BAG-001", "Mochila Antirrobo", "Mochila impermeable con puerto de carga USB.", "Morrales", "backpack", 185000, dbtypes.StringMap{"Marca": "Generic", "Color": "Gris"}, false},
	}
	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Product{
			ID:             r.id,
			SKU:            r.sku,
			Name:           r.name,
			Description:    r.description,
			Price:          decimal.NewFromInt(r.price),
			Category:       r.category,
			Image:          "https://picsum.photos/seed/" + r.imageSeed + "/400/400",
			Images:         dbtypes.StringList{},
			Specifications: r.specs,
			IsFeatured:     r.featured,
			IsActive:       true,
		})
	}
	return out
}

func seedAdminUser() models.User {
	return models.User{
		ID:       "u1",
		Name:     "Juan Pérez",
		Email:    "juan.perez@example.com",
		Password: "password123",
		Avatar:   "https://picsum.photos/seed/user1/100/100",
		Phone:    "+34 600 000 000",
		City:     "Madrid",
		IsActive: true,
		Role:     enums.UserRoleAdmin,
	}
}

func seedBanners() []models.Banner {
	return []models.Banner{
		{
			ID:          "1",
			Title:       "New iPhone 15 Pro",
			Description: "The ultimate iPhone experience.",
			Link:        "/products?category=Celulares%20y%20Tables",
			SortOrder:   1,
			IsActive:    true,
			Style:       enums.BannerStyleSplit,
		},
		{
			ID:          "2",
			Title:       "Flash Sale: 40% Off",
			Description: "Limited time offer on top laptops.",
			Link:        "/products?category=Computadores",
			SortOrder:   2,
			IsActive:    true,
			Style:       enums.BannerStyleCover,
		},
	}
}

func seedStoreSettings() []models.StoreSetting {
	return []models.StoreSetting{
		{Key: "store_name", Value: "Tienda Online", Description: "Nombre de la tienda"},
		{Key: "currency_code", Value: "COP", Description: "Codigo de moneda ISO 4217"},
		{Key: "currency_locale", Value: "es-CO", Description: "Locale para formato de moneda"},
		{Key: "primary_color", Value: "#3270a9", Description: "Color principal de la marca"},
		{Key: "contact_whatsapp", Value: "+573000000000", Description: "Numero de WhatsApp para pedidos"},
	}
}

func seedPaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{
			ID:            "1",
			BankName:      "Bancolombia",
			AccountType:   "Ahorros",
			AccountNumber: "1234567890",
			AccountHolder: "Tienda Online S.A.S",
			IsActive:      true,
			Instructions:  "Enviar comprobante al WhatsApp",
		},
		{
			ID:            "2",
			BankName:      "Nequi",
			AccountType:   "Deposito",
			AccountNumber: "3001234567",
			AccountHolder: "Tienda Online",
			IsActive:      true,
			Instructions:  "Recuerda poner tu numero de pedido en la referencia",
		},
	}
}
