package guard

import (
	"context"
	"net/url"
	"sort"
	"strings"
)

// Resolution — итог навигации: куда идти и в каком состоянии guard
type Resolution struct {
	// Path — целевой путь: исходный при успехе, логин с параметром
	// next при отказе
	Path string
	// State — состояние guard'а после проверки
	State State
}

type route struct {
	prefix string
	guard  *Guard
}

// Navigator сопоставляет пути с guard'ами и разрешает переходы.
// Вложенность маршрутов выражается префиксами: guard на /dashboard/admin
// покрывает и /dashboard/admin/users — проверка одна на поддерево,
// без дублей на каждый вложенный путь.
type Navigator struct {
	loginPath string
	routes    []route
}

// NewNavigator создает навигатор; loginPath — куда отправлять
// неавторизованных
func NewNavigator(loginPath string) *Navigator {
	return &Navigator{loginPath: loginPath}
}

// Protect вешает guard на префикс пути. При пересечении префиксов
// побеждает самый длинный.
func (n *Navigator) Protect(prefix string, g *Guard) {
	n.routes = append(n.routes, route{prefix: strings.TrimSuffix(prefix, "/"), guard: g})
	sort.Slice(n.routes, func(i, j int) bool {
		return len(n.routes[i].prefix) > len(n.routes[j].prefix)
	})
}

// Resolve проверяет переход на path. Незащищенные пути проходят без
// проверки; защищенные — через Check соответствующего guard'а.
// Отказ дает редирект на логин с исходным путем в параметре next,
// чтобы после входа вернуть пользователя туда, куда он шел.
func (n *Navigator) Resolve(ctx context.Context, path string) Resolution {
	g := n.match(path)
	if g == nil {
		return Resolution{Path: path, State: StateAuthorized}
	}

	state := g.Check(ctx)
	if state == StateAuthorized {
		return Resolution{Path: path, State: state}
	}
	return Resolution{
		Path:  n.loginPath + "?next=" + url.QueryEscape(path),
		State: state,
	}
}

// match находит guard с самым длинным префиксом, покрывающим path.
// Префикс совпадает только по границе сегмента: /dashboard не
// покрывает /dashboards.
func (n *Navigator) match(path string) *Guard {
	for _, r := range n.routes {
		if path == r.prefix || strings.HasPrefix(path, r.prefix+"/") {
			return r.guard
		}
	}
	return nil
}
