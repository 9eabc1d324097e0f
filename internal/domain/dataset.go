package domain

// Dataset é a coleção imutável de vendas carregada na inicialização.
// Os métodos devolvem cópias, então nenhum consumidor consegue alterar os registros.
type Dataset struct {
	sales []Sale
}

func NewDataset(sales []Sale) *Dataset {
	copied := make([]Sale, len(sales))
	copy(copied, sales)

	return &Dataset{sales: copied}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sales)
}

func (d *Dataset) Sales() []Sale {
	if d == nil {
		return []Sale{}
	}

	sales := make([]Sale, len(d.sales))
	copy(sales, d.sales)
	return sales
}

// ForEach percorre as vendas por valor, parando quando fn retorna false
func (d *Dataset) ForEach(fn func(sale Sale) bool) {
	if d == nil {
		return
	}

	for _, sale := range d.sales {
		if !fn(sale) {
			return
		}
	}
}

// States lista os estados distintos na ordem em que aparecem no dataset
func (d *Dataset) States() []string {
	return DistinctStates(d.Sales())
}

func DistinctStates(sales []Sale) []string {
	seen := make(map[string]struct{})
	states := make([]string, 0)

	for _, sale := range sales {
		if _, ok := seen[sale.State]; ok {
			continue
		}
		seen[sale.State] = struct{}{}
		states = append(states, sale.State)
	}

	return states
}
