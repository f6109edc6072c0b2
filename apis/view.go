/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// ErrorView is the shape of an error that is safe to put on the wire or in a
// log line. The cause chain is flattened into Causes as rendered strings.
type ErrorView struct {
	Kind    string         `json:"kind"`
	Code    string         `json:"code"`
	Reason  string         `json:"reason,omitempty"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Causes  []string       `json:"causes,omitempty"`
}

// ViewProvider is implemented by errors that can render their own view.
type ViewProvider interface {
	error
	ErrorView() ErrorView
}
