/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package common

import "golang.org/x/exp/constraints"

// Number is the set of element types the arithmetic sequence primitives accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Hasher maps an item to a 64-bit hash. Equal items must hash equally.
type Hasher[C Number] interface {
	Hash(item C) uint64
}
