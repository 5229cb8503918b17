package seeder

import "coshare/internal/domain/entity"

// categoryImages returns the extra gallery images shown for a category.
func categoryImages(category entity.Category) []string {
	switch category {
	case entity.CategoryRealEstate:
		return []string{
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1600596542815-2a434f499419?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?q=80&w=1200&auto=format&fit=crop",
		}
	case entity.CategorySupercar:
		return []string{
			"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1494976388531-d1058494cdd8?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1544605972-e2d85f67530c?q=80&w=1200&auto=format&fit=crop",
		}
	case entity.CategoryClassic:
		return []string{
			"https://images.unsplash.com/photo-1566008885218-90abf9200ddb?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1583121274602-3e2820c698d9?q=80&w=1200&auto=format&fit=crop",
		}
	case entity.CategoryOffroad:
		return []string{
			"https://images.unsplash.com/photo-1601362840469-51e4d8d58785?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1600329668735-3733c042337e?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?q=80&w=1200&auto=format&fit=crop",
		}
	case entity.CategoryYacht:
		return []string{
			"https://images.unsplash.com/photo-1567899378494-47b22a2ae96a?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1605281317010-fe5ffe79ba02?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1569263979104-865ab7cd8d13?q=80&w=1200&auto=format&fit=crop",
		}
	case entity.CategoryJet:
		return []string{
			"https://images.unsplash.com/photo-1540962351504-03099e0a754b?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1583067675402-23f27f8a32d1?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1612251372727-4c07d30d9518?q=80&w=1200&auto=format&fit=crop",
		}
	case entity.CategorySuperbike:
		return []string{
			"https://images.unsplash.com/photo-1558981806-ec527fa84c3d?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1568772585407-9361f9bf3a87?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1599819811279-d5ad9cccf838?q=80&w=1200&auto=format&fit=crop",
		}
	case entity.CategoryWatch:
		return []string{
			"https://images.unsplash.com/photo-1523170335258-f5ed11844a49?q=80&w=1200&auto=format&fit=crop",
		}
	default:
		return nil
	}
}
