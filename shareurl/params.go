package shareurl

import (
	"net/url"
	"strings"
)

type param struct {
	key   string
	value string
}

// Params — query-параметры в порядке добавления.
// url.Values сортирует ключи при Encode, а порядок здесь позиционный.
type Params struct {
	list []param
}

func (p *Params) Add(key, value string) {
	p.list = append(p.list, param{key: key, value: value})
}

func (p *Params) Len() int {
	return len(p.list)
}

// Encode кодирует параметры как application/x-www-form-urlencoded
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.list {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}
