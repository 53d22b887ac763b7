// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx_test

import (
	"bytes"
	"fmt"
	"strings"

	"code.hybscloud.com/bufx"
)

func ExampleBuffer() {
	buf := bufx.NewUninitBuffer(bufx.Alloc(10, 10))

	// Fill part of the raw region, then declare exactly what was written.
	copy(buf.Uninit()[:5], "bufx!")
	buf.AssumeInitialized(5)

	head, _ := buf.Parts()
	fmt.Println(string(head), buf.Initialized())
	// Output: bufx! 5
}

func ExampleReadToEnd() {
	var v []byte
	n, err := bufx.ReadToEnd(strings.NewReader("hello, world"), &v)
	fmt.Println(n, err, string(v))
	// Output: 12 <nil> hello, world
}

func ExampleCopy() {
	var dst bytes.Buffer
	n, _ := bufx.Copy(&dst, strings.NewReader("hayabusa"))
	fmt.Println(n, dst.String())
	// Output: 8 hayabusa
}
