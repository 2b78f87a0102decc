// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package relay

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/walteh/ghtree/pkg/listing"
)

// ListPath is where HandleList is mounted.
const ListPath = "/api/list"

// 🌐 HandleList serves GET /api/list?owner=&repo=&branch=&path=
func (r *Relay) HandleList(c echo.Context) error {
	loc := listing.Location{
		Owner:  c.QueryParam("owner"),
		Repo:   c.QueryParam("repo"),
		Branch: c.QueryParam("branch"),
		Path:   c.QueryParam("path"),
	}

	l, err := r.ListDirectory(c.Request().Context(), loc)
	if err != nil {
		status, body := ErrorResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, l)
}
